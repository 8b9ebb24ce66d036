package entry

import (
	"strings"
	"unicode/utf8"

	"github.com/dailynotes/daily/pkg/text"
)

// Symbols accepted in RST section lines. The serializer emits "=" for
// the title block and "-" for subsections.
const rstSectionSymbols = "=-"

// isRSTSectionLine returns if a line consists of a single repeated
// section symbol, i.e. an overline or underline bounding a heading.
func isRSTSectionLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	symbol := line[0]
	if !strings.ContainsRune(rstSectionSymbols, rune(symbol)) {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != symbol {
			return false
		}
	}
	return true
}

// ParseRST creates a new Entry from RST text.
//
// The title of the entry is expected to be an over/underlined block
// (=====), followed by the entry notes, followed by the rest of the
// headings as underlined text lines. The attribute block comes last,
// after a line containing only the attribute marker.
func ParseRST(raw string) (*Entry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyEntry
	}

	body, attrSection := splitAttributeSection(raw, rstAttributeMarker)
	attrs, err := parseAttributes(attrSection)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(body, "\n")

	// Strip the title overline if present
	if len(lines) > 0 && isRSTSectionLine(lines[0]) {
		lines = lines[1:]
	}

	// A heading is the text line directly above a section line
	var headingPoints []int
	for i, line := range lines {
		if i == 0 || !isRSTSectionLine(line) {
			continue
		}
		above := lines[i-1]
		if text.IsBlank(above) || isRSTSectionLine(above) {
			continue
		}
		headingPoints = append(headingPoints, i-1)
	}
	if len(headingPoints) == 0 {
		return nil, ErrMissingTitle
	}
	headingPoints = append(headingPoints, len(lines))

	// The first heading is the title
	title := strings.TrimSpace(lines[headingPoints[0]])

	headings := NewHeadings()

	// Gather the notes, skipping the title underline
	notes := extractLines(lines, headingPoints[0]+2, headingPoints[1])
	if !text.IsBlank(notes) {
		headings.Set(NotesHeading, notes)
	}

	// Gather the remaining headings
	for i := 1; i < len(headingPoints)-1; i++ {
		name := strings.TrimSpace(lines[headingPoints[i]])
		content := extractLines(lines, headingPoints[i]+2, headingPoints[i+1])
		headings.Set(name, content)
	}

	return New(title, headings, attrs), nil
}

// ToRST serializes the entry as RST. See ToMarkdown for the semantics
// of the headings list and the force flag.
func (e *Entry) ToRST(headings []string, force bool) (string, error) {
	requested := e.requestedHeadings(headings)
	display := false

	bar := strings.Repeat("=", utf8.RuneCountInString(e.Title)+2)

	var s []string
	s = append(s, bar, " "+e.Title, bar)

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
		s = append(s,
			stored,
			strings.Repeat("-", utf8.RuneCountInString(stored)),
			strings.TrimRight(content, " \t\n"),
			"")
	}

	if !display && !force {
		return "", nil
	}
	if !display {
		// No content, but add an empty line for good looks
		s = append(s, "")
	}

	s = append(s, "", rstAttributeMarker, "")
	attrLines, err := formatAttributes(e.Attrs)
	if err != nil {
		return "", err
	}
	s = append(s, attrLines...)
	s = append(s, "")

	return strings.Join(s, "\n"), nil
}
