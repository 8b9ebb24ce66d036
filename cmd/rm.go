package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm <title>",
	Short: "Remove an entry from the journal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		if err := j.Remove(args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		saveJournal(j)
	},
}
