package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/entry"
)

var listTag string
var listQuery string

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "only entries carrying this tag")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "only entries matching this jq expression (ex: '.mood == \"great\"')")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of the journal",
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		var entries []*entry.Entry
		switch {
		case listTag != "":
			entries = j.FilterByTag(listTag)
		case listQuery != "":
			var err error
			entries, err = j.Query(listQuery)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		default:
			entries = j.Entries()
		}

		for _, e := range entries {
			if tags := e.Tags(); len(tags) > 0 {
				fmt.Printf("%s (%s)\n", e.Title, strings.Join(tags, ", "))
			} else {
				fmt.Println(e.Title)
			}
		}
	},
}
