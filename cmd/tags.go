package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags in use with their entry count",
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		tags := j.Tags()
		names := make([]string, 0, len(tags))
		for name := range tags {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("%s (%d)\n", name, tags[name])
		}
	},
}
