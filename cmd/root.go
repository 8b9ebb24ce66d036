package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailynotes/daily/internal/entry"
	"github.com/dailynotes/daily/internal/journal"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var journalPath string
var formatName string

var rootCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily is a plain-text personal journal",
	Long:  `Keep a personal journal of titled entries in a single Markdown or RST file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			journal.CurrentLogger().SetVerboseLevel(journal.VerboseInfo)
		}
		if verboseDebug {
			journal.CurrentLogger().SetVerboseLevel(journal.VerboseDebug)
		}
		if verboseTrace {
			journal.CurrentLogger().SetVerboseLevel(journal.VerboseTrace)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "verbose", "v", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVar(&verboseDebug, "verbose-debug", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&verboseTrace, "verbose-trace", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "journal file (default from the configuration)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "", `journal format, "md" or "rst" (default from the configuration)`)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// currentFormat resolves the journal format honoring the --format flag.
func currentFormat() entry.Format {
	if formatName != "" {
		f, err := entry.ParseFormat(formatName)
		if err != nil {
			journal.CurrentLogger().Fatal(err)
		}
		return f
	}
	return journal.CurrentConfig().Format()
}

// currentJournalPath resolves the journal file honoring the --journal flag.
func currentJournalPath() string {
	if journalPath != "" {
		return journalPath
	}
	return journal.CurrentConfig().JournalFile()
}

// currentJournal loads the journal file honoring the global flags.
func currentJournal() *journal.Journal {
	j, err := journal.Load(currentJournalPath(), currentFormat())
	if err != nil {
		journal.CurrentLogger().Fatal(err)
	}
	journal.CurrentLogger().Debugf("Loaded %d entries from %s", j.Len(), j.Path)
	return j
}

func saveJournal(j *journal.Journal) {
	if err := j.Save(); err != nil {
		journal.CurrentLogger().Fatal(err)
	}
}
