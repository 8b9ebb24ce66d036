package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/entry"
)

var convertTo string
var convertOutput string

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", `target format, "md" or "rst"`)
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "target file (default alongside the journal file)")
	convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the journal to the other format",
	Run: func(cmd *cobra.Command, args []string) {
		target, err := entry.ParseFormat(convertTo)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		j := currentJournal()
		if target == j.Format {
			fmt.Printf("The journal already uses the %s format\n", target)
			os.Exit(1)
		}

		j.Format = target
		if convertOutput != "" {
			j.Path = convertOutput
		} else {
			j.Path = strings.TrimSuffix(j.Path, currentFormat().Extension()) + target.Extension()
		}
		saveJournal(j)
		fmt.Printf("Converted %d entries to %s\n", j.Len(), j.Path)
	},
}
