package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showHeadings []string

func init() {
	showCmd.Flags().StringSliceVar(&showHeadings, "headings", nil, "limit the output to these headings")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		e, err := j.Get(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		text, err := e.Render(j.Format, showHeadings, true)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(text)
	},
}
