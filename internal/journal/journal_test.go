package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailynotes/daily/internal/entry"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	return &Journal{
		Path:   filepath.Join(t.TempDir(), "journal.md"),
		Format: entry.FormatMarkdown,
	}
}

func newTestEntry(title string, notes string, tags ...string) *entry.Entry {
	e := entry.New(title, nil, map[string]any{"tags": tags})
	e.Headings.Set(entry.NotesHeading, notes)
	return e
}

func TestLoad(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	t.Run("Missing file is an empty journal", func(t *testing.T) {
		j, err := Load(filepath.Join(t.TempDir(), "journal.md"), entry.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, 0, j.Len())
	})

	t.Run("Existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.md")
		err := os.WriteFile(path, []byte(`# Buy milk
Remember 2%

<!--- end-entry --->

# Call mom
Before Sunday.
`), 0644)
		require.NoError(t, err)

		j, err := Load(path, entry.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, 2, j.Len())
	})

	t.Run("Malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.md")
		err := os.WriteFile(path, []byte("no title at all"), 0644)
		require.NoError(t, err)

		_, err = Load(path, entry.FormatMarkdown)
		require.ErrorIs(t, err, entry.ErrMissingTitle)
	})
}

func TestJournalAdd(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%")))

	err := j.Add(newTestEntry("Buy milk", "again"))
	require.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Equal(t, 1, j.Len())
}

func TestJournalGet(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%")))
	require.NoError(t, j.Add(newTestEntry("buy milk", "the other one")))

	t.Run("Exact match wins", func(t *testing.T) {
		e, err := j.Get("buy milk")
		require.NoError(t, err)
		notes, _ := e.Headings.Get(entry.NotesHeading)
		assert.Equal(t, "the other one", notes)
	})

	t.Run("Case-insensitive fallback", func(t *testing.T) {
		e, err := j.Get("BUY MILK")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", e.Title)
	})

	t.Run("Missing entry", func(t *testing.T) {
		_, err := j.Get("unknown")
		require.ErrorIs(t, err, ErrNoEntry)
	})
}

func TestJournalUpdate(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%")))

	other := newTestEntry("Buy milk", "semi-skimmed", "shopping")
	require.NoError(t, j.Update("Buy milk", other, nil))

	e, err := j.Get("Buy milk")
	require.NoError(t, err)
	notes, _ := e.Headings.Get(entry.NotesHeading)
	assert.Equal(t, "semi-skimmed", notes)
	assert.Equal(t, []string{"shopping"}, e.Tags())
}

func TestJournalRemove(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%")))

	require.NoError(t, j.Remove("Buy milk"))
	assert.Equal(t, 0, j.Len())

	err := j.Remove("Buy milk")
	require.ErrorIs(t, err, ErrNoEntry)
}

func TestJournalTags(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%", "shopping", "home")))
	require.NoError(t, j.Add(newTestEntry("Call mom", "Sunday", "home")))

	assert.Equal(t, map[string]int{"home": 2, "shopping": 1}, j.Tags())

	filtered := j.FilterByTag("home")
	require.Len(t, filtered, 2)
	assert.Equal(t, "Buy milk", filtered[0].Title)
	assert.Equal(t, "Call mom", filtered[1].Title)

	assert.Empty(t, j.FilterByTag("work"))
}

func TestJournalQuery(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%", "shopping")))
	require.NoError(t, j.Add(newTestEntry("Standup notes", "demo", "work")))

	t.Run("Matching entries", func(t *testing.T) {
		result, err := j.Query(`.tags | contains(["work"])`)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Standup notes", result[0].Title)
	})

	t.Run("No match", func(t *testing.T) {
		result, err := j.Query(`.tags | contains(["travel"])`)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Invalid expression", func(t *testing.T) {
		_, err := j.Query(`.tags |`)
		require.Error(t, err)
	})
}

func TestJournalSave(t *testing.T) {
	entry.UseSequenceIDGenerator()
	defer entry.ResetIDGenerator()

	j := newTestJournal(t)
	require.NoError(t, j.Add(newTestEntry("Call mom", "Sunday")))
	require.NoError(t, j.Add(newTestEntry("Buy milk", "2%", "shopping")))
	require.NoError(t, j.Save())

	reloaded, err := Load(j.Path, j.Format)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())

	// Entries are saved sorted by title
	entries := reloaded.Entries()
	assert.Equal(t, "Buy milk", entries[0].Title)
	assert.Equal(t, "Call mom", entries[1].Title)
	assert.Equal(t, []string{"shopping"}, entries[0].Tags())
}

func TestDiff(t *testing.T) {
	patch := Diff("journal.md", "# Buy milk\nold\n", "# Buy milk\nnew\n")
	assert.Contains(t, patch, "-old")
	assert.Contains(t, patch, "+new")
}
