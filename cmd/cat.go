package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var catDebug bool

func init() {
	catCmd.Flags().BoolVar(&catDebug, "debug", false, "dump the in-memory representation instead")
	rootCmd.AddCommand(catCmd)
}

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print the journal file as it is saved",
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		if catDebug {
			spew.Dump(j.Entries())
			return
		}

		text, err := j.Text()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(text)
	},
}
