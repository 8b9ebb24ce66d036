package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/export"
)

var exportDir string
var exportOpen bool

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "site", "output directory")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "open the exported site in the browser")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal as a static HTML site",
	Run: func(cmd *cobra.Command, args []string) {
		j := currentJournal()

		indexPath, err := export.Export(j.Entries(), exportDir)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d entries to %s\n", j.Len(), exportDir)

		if exportOpen {
			if err := browser.OpenFile(indexPath); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
	},
}
