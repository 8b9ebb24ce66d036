package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/entry"
	"github.com/dailynotes/daily/internal/journal"
)

var addTags []string
var addEdit bool

func init() {
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "tags of the new entry")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "open the new entry in the editor")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new entry to the journal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		e := entry.NewBlankEntry(args[0])
		e.SetTags(addTags)

		if addEdit {
			edited, shownHeadings, err := journal.EditEntry(e, j.Format, journal.CurrentConfig().Editor())
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			e.Update(edited, shownHeadings)
		}

		if err := j.Add(e); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		saveJournal(j)
		journal.CurrentLogger().Infof("Added %q (%s)", e.Title, e.ID())
	},
}
