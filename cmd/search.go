package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/index"
	"github.com/dailynotes/daily/internal/journal"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the journal with full-text queries",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		idx, err := index.Open(journal.CurrentConfig().IndexFile())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer idx.Close()

		// The journal file stays the source of truth.
		// Reindex before every search instead of tracking staleness.
		if err := idx.Rebuild(j.Entries()); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		matches, err := idx.Search(strings.Join(args, " "))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		for _, m := range matches {
			fmt.Println(m.Title)
		}
	},
}
