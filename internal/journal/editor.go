package journal

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dailynotes/daily/internal/entry"
	"github.com/google/uuid"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// EditEntry serializes an entry to a temporary file, runs the editor on
// it and parses the result. The caller is expected to apply the result
// with entry.Update using the returned heading names as the expected
// headings, so that headings deleted in the editor are deleted from the
// entry as well.
func EditEntry(e *entry.Entry, format entry.Format, editor string) (*entry.Entry, []string, error) {
	shownHeadings := e.Headings.Names()

	raw, err := e.Render(format, nil, true)
	if err != nil {
		return nil, nil, err
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("daily-%s%s", uuid.NewString(), format.Extension()))
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		return nil, nil, err
	}
	defer os.Remove(path)

	if err := runEditor(editor, path); err != nil {
		return nil, nil, fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	parsed, err := entry.Parse(string(edited), format)
	if err != nil {
		return nil, nil, err
	}
	return parsed, shownHeadings, nil
}

func runEditor(editor string, path string) error {
	// The editor setting can carry arguments (ex: "code --wait")
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Diff returns a unified patch between two versions of the journal file.
func Diff(path string, before string, after string) string {
	return godiffpatch.GeneratePatch(path, before, after)
}
