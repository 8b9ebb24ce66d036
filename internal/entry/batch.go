package entry

import (
	"fmt"
	"strings"
)

// FromText converts a multi-entry document to a list of entries.
//
// The document is split on the separator of the format; a trailing
// separator is tolerated. The first chunk failing to parse aborts the
// whole conversion.
func FromText(input string, f Format) ([]*Entry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	chunks := strings.Split(input, f.Separator())
	if chunks[len(chunks)-1] == "" {
		chunks = chunks[:len(chunks)-1]
	}

	var entries []*Entry
	for i, chunk := range chunks {
		e, err := Parse(chunk, f)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ToText converts a list of entries to a multi-entry document.
//
// Entries serializing to nothing are dropped, the rest is ordered by
// title (ignoring the case) and joined with the separator of the format.
// The output can be passed back to FromText.
func ToText(entries []*Entry, f Format, headings []string) (string, error) {
	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)
	SortEntries(sorted)

	var texts []string
	for _, e := range sorted {
		t, err := e.Render(f, headings, false)
		if err != nil {
			return "", err
		}
		if t == "" {
			continue
		}
		texts = append(texts, t)
	}

	return strings.Join(texts, "\n"+f.Separator()+"\n\n\n"), nil
}
