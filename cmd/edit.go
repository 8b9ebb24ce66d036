package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/journal"
)

var editDiff bool

func init() {
	editCmd.Flags().BoolVar(&editDiff, "diff", false, "print the journal changes after editing")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [title]",
	Short: "Edit an entry in your editor",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		var title string
		if len(args) > 0 {
			title = args[0]
		} else {
			var titles []string
			for _, e := range j.Entries() {
				titles = append(titles, e.Title)
			}
			if len(titles) == 0 {
				fmt.Println("The journal is empty")
				os.Exit(1)
			}
			title = ChooseEntry(titles)
			if title == "" {
				return
			}
		}

		e, err := j.Get(title)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		before, err := j.Text()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		edited, shownHeadings, err := journal.EditEntry(e, j.Format, journal.CurrentConfig().Editor())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		e.Update(edited, shownHeadings)
		saveJournal(j)

		if editDiff {
			after, err := j.Text()
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Print(journal.Diff(j.Path, before, after))
		}
	},
}
