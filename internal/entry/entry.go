package entry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jinzhu/copier"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// titleCollator orders entries by title ignoring the case.
var titleCollator = collate.New(language.Und, collate.IgnoreCase)

// Entry represents a single record from a journal.
//
// The free text under the title is stored under the reserved heading
// "notes". The attribute "id" is assigned on creation and survives
// updates; the attribute "tags" is kept deduplicated and sorted.
type Entry struct {
	Title    string
	Headings *Headings
	Attrs    map[string]any
}

// New creates an entry from a title, optional headings and optional attributes.
// Missing "id" and "tags" attributes are filled with defaults.
func New(title string, headings *Headings, attrs map[string]any) *Entry {
	e := &Entry{
		Title:    title,
		Headings: NewHeadings(),
		Attrs:    make(map[string]any),
	}
	if headings != nil {
		e.Headings = headings.Clone()
	}
	for k, v := range attrs {
		e.Attrs[k] = v
	}

	if id, ok := e.Attrs["id"].(string); !ok || strings.TrimSpace(id) == "" {
		e.Attrs["id"] = NewID(title)
	}

	e.refresh()
	return e
}

// NewBlankEntry creates an entry with a title only.
func NewBlankEntry(title string) *Entry {
	return New(title, nil, nil)
}

// ID returns the stable identity of the entry.
func (e *Entry) ID() string {
	id, _ := e.Attrs["id"].(string)
	return id
}

// Tags returns the normalized tags of the entry.
func (e *Entry) Tags() []string {
	tags, _ := e.Attrs["tags"].([]string)
	return tags
}

// SetTags replaces the tags of the entry.
func (e *Entry) SetTags(tags []string) {
	e.Attrs["tags"] = tags
	e.refresh()
}

// AddHeadings adds new headings to the entry. No content is added and
// headings already present (case-sensitive match) are left untouched.
func (e *Entry) AddHeadings(names ...string) {
	for _, name := range names {
		if !e.Headings.Has(name) {
			e.Headings.Set(name, "")
		}
	}
}

// Heading returns the content of a heading, searched case-insensitively.
func (e *Entry) Heading(name string) (string, error) {
	_, content, ok := e.Headings.GetFold(name)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownHeading, name)
	}
	return content, nil
}

// Update replaces the title, attributes and headings of the entry from
// another entry while preserving the identity of the receiver.
//
// When expectedHeadings is empty, headings are replaced wholesale.
// Otherwise, every expected heading missing from the other entry is
// deleted from the receiver, and the remaining headings are merged with
// the other entry's headings taking precedence.
func (e *Entry) Update(other *Entry, expectedHeadings []string) {
	oldID := e.ID()

	e.Title = other.Title
	e.Attrs = copyAttrs(other.Attrs)
	e.Attrs["id"] = oldID

	if len(expectedHeadings) == 0 {
		e.Headings = other.Headings.Clone()
	} else {
		for _, name := range expectedHeadings {
			if !other.Headings.Has(name) && e.Headings.Has(name) {
				e.Headings.Delete(name)
			}
		}
		for _, name := range other.Headings.Names() {
			content, _ := other.Headings.Get(name)
			e.Headings.Set(name, content)
		}
	}

	e.refresh()
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	return &Entry{
		Title:    e.Title,
		Headings: e.Headings.Clone(),
		Attrs:    copyAttrs(e.Attrs),
	}
}

// Equal compares two entries. Only the title matters, the identity is
// deliberately ignored.
func (e *Entry) Equal(other *Entry) bool {
	return e.Title == other.Title
}

// Less orders two entries by title ignoring the case.
func (e *Entry) Less(other *Entry) bool {
	return titleCollator.CompareString(e.Title, other.Title) < 0
}

// refresh reapplies the invariants after a mutation. Tags must be
// deduplicated and sorted.
func (e *Entry) refresh() {
	e.Attrs["tags"] = NormalizeTags(tagValues(e.Attrs["tags"]))
}

// NormalizeTags returns the tags deduplicated and sorted.
func NormalizeTags(tags []string) []string {
	result := []string{}
	seen := make(map[string]bool)
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	slices.Sort(result)
	return result
}

// SortEntries sorts entries in place by title ignoring the case.
func SortEntries(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Less(entries[j])
	})
}

// tagValues coerces the YAML representation of tags into strings.
func tagValues(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		var result []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			} else {
				result = append(result, fmt.Sprint(item))
			}
		}
		return result
	default:
		return nil
	}
}

func copyAttrs(attrs map[string]any) map[string]any {
	result := make(map[string]any)
	if err := copier.CopyWithOption(&result, attrs, copier.Option{DeepCopy: true}); err != nil {
		// Maps of scalars never fail to copy; fall back to a shallow copy.
		for k, v := range attrs {
			result[k] = v
		}
	}
	return result
}
