package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdown(t *testing.T) {
	UseFixedIDGenerator("x1")
	defer ResetIDGenerator()

	t.Run("Basic entry", func(t *testing.T) {
		e, err := ParseMarkdown(`# Buy milk
Remember 2%

## Tags
urgent

<!--- attributes --->
    ---
    id: x1
    tags:
    - shopping
`)
		require.NoError(t, err)

		assert.Equal(t, "Buy milk", e.Title)
		assert.Equal(t, []string{NotesHeading, "Tags"}, e.Headings.Names())
		notes, _ := e.Headings.Get(NotesHeading)
		assert.Equal(t, "Remember 2%", notes)
		content, _ := e.Headings.Get("Tags")
		assert.Equal(t, "urgent", content)
		assert.Equal(t, "x1", e.ID())
		assert.Equal(t, []string{"shopping"}, e.Tags())
	})

	t.Run("Title only", func(t *testing.T) {
		e, err := ParseMarkdown(`# Buy milk`)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", e.Title)
		assert.Equal(t, 0, e.Headings.Len())
		assert.Equal(t, "x1", e.ID())
	})

	t.Run("Multiline notes", func(t *testing.T) {
		e, err := ParseMarkdown(`# Buy milk
First line.

Second paragraph.

## Later
check prices`)
		require.NoError(t, err)
		notes, _ := e.Headings.Get(NotesHeading)
		assert.Equal(t, "First line.\n\nSecond paragraph.", notes)
	})

	t.Run("Last marker line wins", func(t *testing.T) {
		e, err := ParseMarkdown(`# Buy milk
The marker below belongs to the notes.

<!--- attributes --->

More notes.

<!--- attributes --->
    ---
    id: x1
`)
		require.NoError(t, err)
		notes, _ := e.Headings.Get(NotesHeading)
		assert.Equal(t, "The marker below belongs to the notes.\n\n<!--- attributes --->\n\nMore notes.", notes)
		assert.Equal(t, "x1", e.ID())
	})

	t.Run("Empty text", func(t *testing.T) {
		_, err := ParseMarkdown("  \n\t\n")
		require.ErrorIs(t, err, ErrEmptyEntry)
	})

	t.Run("Missing title", func(t *testing.T) {
		_, err := ParseMarkdown("just some text\nwithout a heading")
		require.ErrorIs(t, err, ErrMissingTitle)
	})

	t.Run("Invalid attributes", func(t *testing.T) {
		_, err := ParseMarkdown(`# Buy milk

<!--- attributes --->
    ---
    id: [unclosed
`)
		var attrErr *AttributeError
		require.ErrorAs(t, err, &attrErr)
	})
}

func TestToMarkdown(t *testing.T) {
	UseFixedIDGenerator("x1")
	defer ResetIDGenerator()

	t.Run("Basic entry", func(t *testing.T) {
		e := New("Buy milk", nil, map[string]any{"tags": []string{"shopping"}})
		e.Headings.Set(NotesHeading, "Remember 2%")
		e.Headings.Set("Tags", "urgent")

		actual, err := e.ToMarkdown(nil, false)
		require.NoError(t, err)
		assert.Equal(t, `# Buy milk
Remember 2%

## Tags
urgent


<!--- attributes --->
    ---
    id: x1
    tags:
      - shopping
`, actual)
	})

	t.Run("Requested headings keep the stored casing", func(t *testing.T) {
		e := NewBlankEntry("Call mom")
		e.Headings.Set(NotesHeading, "soon")
		e.Headings.Set("Todo", "find number")

		actual, err := e.ToMarkdown([]string{"todo"}, false)
		require.NoError(t, err)
		assert.Equal(t, `# Call mom
## Todo
find number


<!--- attributes --->
    ---
    id: x1
    tags: []
`, actual)
	})

	t.Run("Unknown requested headings are skipped", func(t *testing.T) {
		e := NewBlankEntry("Call mom")
		e.Headings.Set("Todo", "find number")

		actual, err := e.ToMarkdown([]string{"missing"}, false)
		require.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("Blank entry", func(t *testing.T) {
		e := NewBlankEntry("Empty")

		actual, err := e.ToMarkdown(nil, false)
		require.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("Blank entry forced", func(t *testing.T) {
		e := NewBlankEntry("Empty")

		actual, err := e.ToMarkdown(nil, true)
		require.NoError(t, err)
		assert.Equal(t, `# Empty


<!--- attributes --->
    ---
    id: x1
    tags: []
`, actual)
	})
}

func TestMarkdownRoundTrip(t *testing.T) {
	UseFixedIDGenerator("x1")
	defer ResetIDGenerator()

	e := New("Buy milk", nil, map[string]any{
		"tags": []string{"home", "shopping"},
		"mood": "fine",
	})
	e.Headings.Set(NotesHeading, "Remember 2%\n\nAnd eggs.")
	e.Headings.Set("Todo", "compare prices")

	raw, err := e.ToMarkdown(nil, false)
	require.NoError(t, err)

	parsed, err := ParseMarkdown(raw)
	require.NoError(t, err)

	assert.Equal(t, e.Title, parsed.Title)
	assert.Equal(t, e.Headings.Names(), parsed.Headings.Names())
	for _, name := range e.Headings.Names() {
		expected, _ := e.Headings.Get(name)
		actual, _ := parsed.Headings.Get(name)
		assert.Equal(t, expected, actual)
	}
	assert.Equal(t, e.ID(), parsed.ID())
	assert.Equal(t, e.Tags(), parsed.Tags())
	assert.Equal(t, "fine", parsed.Attrs["mood"])
}
