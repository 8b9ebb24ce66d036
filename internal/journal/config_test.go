package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
	"gotest.tools/assert"

	"github.com/dailynotes/daily/internal/entry"
)

func TestReadConfigFromDirectory(t *testing.T) {
	t.Run("Missing config file means defaults", func(t *testing.T) {
		root := t.TempDir()

		c, err := ReadConfigFromDirectory(root)
		assert.NilError(t, err)
		assert.Equal(t, entry.FormatMarkdown, c.Format())
		assert.Equal(t, filepath.Join(root, "journal.md"), c.JournalFile())
		assert.Equal(t, filepath.Join(root, "index.db"), c.IndexFile())
	})

	t.Run("Existing config file", func(t *testing.T) {
		root := t.TempDir()
		err := copy.Copy("testdata/config", root)
		assert.NilError(t, err)

		c, err := ReadConfigFromDirectory(root)
		assert.NilError(t, err)
		assert.Equal(t, entry.FormatRST, c.Format())
		assert.Equal(t, filepath.Join(root, "journal.rst"), c.JournalFile())
		assert.Equal(t, "vim", c.Editor())
	})

	t.Run("Journal override", func(t *testing.T) {
		root := t.TempDir()
		err := os.WriteFile(filepath.Join(root, configFilename), []byte(`
[core]
format = "md"
journal = "/tmp/elsewhere.md"
`), 0644)
		assert.NilError(t, err)

		c, err := ReadConfigFromDirectory(root)
		assert.NilError(t, err)
		assert.Equal(t, "/tmp/elsewhere.md", c.JournalFile())
	})

	t.Run("Invalid format", func(t *testing.T) {
		root := t.TempDir()
		err := os.WriteFile(filepath.Join(root, configFilename), []byte(`
[core]
format = "org"
`), 0644)
		assert.NilError(t, err)

		_, err = ReadConfigFromDirectory(root)
		assert.Assert(t, err != nil)
	})

	t.Run("Malformed file", func(t *testing.T) {
		root := t.TempDir()
		err := os.WriteFile(filepath.Join(root, configFilename), []byte(`[core`), 0644)
		assert.NilError(t, err)

		_, err = ReadConfigFromDirectory(root)
		assert.Assert(t, err != nil)
	})
}

func TestCurrentConfig(t *testing.T) {
	root := t.TempDir()
	t.Setenv("DAILY_DIR", root)
	Reset()
	defer Reset()

	c := CurrentConfig()
	assert.Equal(t, root, c.RootDirectory)

	// The singleton is reused on later calls
	assert.Equal(t, c, CurrentConfig())
}

func TestEditor(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	c := &Config{}
	assert.Equal(t, "nano", c.Editor())

	c.ConfigFile.Core.Editor = "code --wait"
	assert.Equal(t, "code --wait", c.Editor())
}
