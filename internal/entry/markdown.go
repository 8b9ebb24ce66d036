package entry

import (
	"strings"

	"github.com/dailynotes/daily/pkg/text"
)

// isMarkdownHeading returns if a line is a title or subsection heading.
func isMarkdownHeading(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "## ")
}

// markdownHeadingName strips the marker syntax from a heading line.
func markdownHeadingName(line string) string {
	line = strings.TrimSpace(line)
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// ParseMarkdown creates a new Entry from Markdown text.
//
// The title of the entry is expected to be a level-1 heading (# ),
// followed by the entry notes, followed by the rest of the headings as
// level-2 headings (## ). The attribute block comes last, after a line
// containing only the attribute marker.
func ParseMarkdown(raw string) (*Entry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyEntry
	}

	body, attrSection := splitAttributeSection(raw, markdownAttributeMarker)
	attrs, err := parseAttributes(attrSection)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(body, "\n")

	// Find the headings
	var headingPoints []int
	for i, line := range lines {
		if isMarkdownHeading(line) {
			headingPoints = append(headingPoints, i)
		}
	}
	if len(headingPoints) == 0 {
		return nil, ErrMissingTitle
	}
	headingPoints = append(headingPoints, len(lines))

	// The first heading is the title
	fields := strings.Fields(lines[headingPoints[0]])
	title := strings.Join(fields[1:], " ")

	headings := NewHeadings()

	// Gather the notes, i.e. the text between the title and the next heading
	notes := extractLines(lines, headingPoints[0]+1, headingPoints[1])
	if !text.IsBlank(notes) {
		headings.Set(NotesHeading, notes)
	}

	// Gather the remaining headings
	for i := 1; i < len(headingPoints)-1; i++ {
		name := markdownHeadingName(lines[headingPoints[i]])
		content := extractLines(lines, headingPoints[i]+1, headingPoints[i+1])
		headings.Set(name, content)
	}

	return New(title, headings, attrs), nil
}

// ToMarkdown serializes the entry as Markdown.
//
// Only the listed headings are shown (all of them when the list is
// empty); names are matched ignoring the case and unknown names are
// skipped. When nothing is displayed the result is empty, unless force
// is set. The attribute block is always appended to a non-empty result.
func (e *Entry) ToMarkdown(headings []string, force bool) (string, error) {
	requested := e.requestedHeadings(headings)
	display := false

	var s []string
	s = append(s, "# "+e.Title)

	if containsFold(requested, NotesHeading) {
		if _, notes, ok := e.Headings.GetFold(NotesHeading); ok {
			display = true
			s = append(s, strings.TrimRight(notes, " \t\n"), "")
		}
	}

	for _, name := range requested {
		if strings.EqualFold(name, NotesHeading) {
			continue
		}
		stored, content, ok := e.Headings.GetFold(name)
		if !ok {
			continue
		}
		display = true
		s = append(s, "## "+stored, strings.TrimRight(content, " \t\n"), "")
	}

	if !display && !force {
		return "", nil
	}
	if !display {
		// No content, but add an empty line for good looks
		s = append(s, "")
	}

	s = append(s, "", markdownAttributeMarker)
	attrLines, err := formatAttributes(e.Attrs)
	if err != nil {
		return "", err
	}
	s = append(s, attrLines...)
	s = append(s, "")

	return strings.Join(s, "\n"), nil
}

// requestedHeadings resolves the heading names to serialize,
// defaulting to every heading present on the entry.
func (e *Entry) requestedHeadings(names []string) []string {
	if len(names) == 0 {
		names = e.Headings.Names()
	}
	return names
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// extractLines joins the lines in [start, end) and trims trailing
// whitespace, which is insignificant in heading content.
func extractLines(lines []string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.TrimRight(strings.Join(lines[start:end], "\n"), " \t\n")
}
