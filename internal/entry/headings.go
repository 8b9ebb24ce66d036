package entry

import "strings"

// NotesHeading is the reserved heading storing the free text
// present directly under the title of an entry.
const NotesHeading = "notes"

// Headings is an ordered mapping from heading names to their content.
// Names preserve the casing used in the journal file but lookups can
// be case-insensitive (see GetFold).
type Headings struct {
	names  []string
	values map[string]string
}

func NewHeadings() *Headings {
	return &Headings{
		values: make(map[string]string),
	}
}

// Set inserts or replaces a heading. The insertion order is preserved
// and an existing heading keeps its position.
func (h *Headings) Set(name, content string) {
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = content
}

// Has checks for the presence of a heading. The match is case-sensitive.
func (h *Headings) Has(name string) bool {
	_, ok := h.values[name]
	return ok
}

// Get returns the content of a heading. The match is case-sensitive.
func (h *Headings) Get(name string) (string, bool) {
	content, ok := h.values[name]
	return content, ok
}

// GetFold searches a heading ignoring the case and returns the stored
// name along the content. The stored casing is never altered.
func (h *Headings) GetFold(name string) (storedName string, content string, ok bool) {
	// The index is rebuilt on every lookup as headings are mutated freely.
	index := make(map[string]string, len(h.names))
	for _, stored := range h.names {
		index[strings.ToLower(stored)] = stored
	}
	stored, ok := index[strings.ToLower(name)]
	if !ok {
		return "", "", false
	}
	return stored, h.values[stored], true
}

// Delete removes a heading. The match is case-sensitive.
func (h *Headings) Delete(name string) {
	if _, ok := h.values[name]; !ok {
		return
	}
	delete(h.values, name)
	for i, n := range h.names {
		if n == name {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

// Names returns the heading names in insertion order.
func (h *Headings) Names() []string {
	names := make([]string, len(h.names))
	copy(names, h.names)
	return names
}

func (h *Headings) Len() int {
	return len(h.names)
}

func (h *Headings) Clone() *Headings {
	result := NewHeadings()
	for _, name := range h.names {
		result.Set(name, h.values[name])
	}
	return result
}
