package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dailynotes/daily/internal/entry"
	"github.com/itchyny/gojq"
)

var (
	// ErrNoEntry is raised when looking up a title absent from the journal.
	ErrNoEntry = errors.New("no such entry")
	// ErrDuplicateEntry is raised when adding a title already present.
	ErrDuplicateEntry = errors.New("entry already exists")
)

// Journal is the collection of entries stored in a single journal file.
type Journal struct {
	Path   string
	Format entry.Format

	entries []*entry.Entry
}

// Load reads a journal file. A missing file is an empty journal.
func Load(path string, format entry.Format) (*Journal, error) {
	j := &Journal{
		Path:   path,
		Format: format,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return j, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := entry.FromText(string(data), format)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	j.entries = entries

	return j, nil
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns the entries sorted by title.
func (j *Journal) Entries() []*entry.Entry {
	entries := make([]*entry.Entry, len(j.entries))
	copy(entries, j.entries)
	entry.SortEntries(entries)
	return entries
}

// Get searches an entry by title, trying an exact match first and
// falling back on a case-insensitive one.
func (j *Journal) Get(title string) (*entry.Entry, error) {
	for _, e := range j.entries {
		if e.Title == title {
			return e, nil
		}
	}
	for _, e := range j.entries {
		if strings.EqualFold(e.Title, title) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoEntry, title)
}

// Add appends a new entry. Titles are unique inside a journal.
func (j *Journal) Add(e *entry.Entry) error {
	for _, existing := range j.entries {
		if existing.Equal(e) {
			return fmt.Errorf("%w: %q", ErrDuplicateEntry, e.Title)
		}
	}
	j.entries = append(j.entries, e)
	return nil
}

// Update replaces an entry from new content while preserving its id.
// See entry.Update for the semantics of expectedHeadings.
func (j *Journal) Update(title string, other *entry.Entry, expectedHeadings []string) error {
	e, err := j.Get(title)
	if err != nil {
		return err
	}
	e.Update(other, expectedHeadings)
	return nil
}

// Remove drops an entry from the journal.
func (j *Journal) Remove(title string) error {
	for i, e := range j.entries {
		if e.Title == title {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNoEntry, title)
}

// Tags returns every tag in use with the number of entries using it.
func (j *Journal) Tags() map[string]int {
	tags := make(map[string]int)
	for _, e := range j.entries {
		for _, tag := range e.Tags() {
			tags[tag]++
		}
	}
	return tags
}

// FilterByTag returns the entries carrying the tag, sorted by title.
func (j *Journal) FilterByTag(tag string) []*entry.Entry {
	var result []*entry.Entry
	for _, e := range j.entries {
		for _, t := range e.Tags() {
			if t == tag {
				result = append(result, e)
				break
			}
		}
	}
	entry.SortEntries(result)
	return result
}

// Query keeps the entries for which the jq expression, evaluated
// against the entry attributes, emits a truthy first value.
//
// Ex: `.tags | contains(["work"])`
func (j *Journal) Query(expr string) ([]*entry.Entry, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	var result []*entry.Entry
	for _, e := range j.entries {
		// gojq only accepts the basic JSON types
		data, err := json.Marshal(e.Attrs)
		if err != nil {
			return nil, err
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}

		iter := query.Run(doc)
		v, ok := iter.Next()
		if !ok {
			continue
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("query failed on entry %q: %w", e.Title, err)
		}
		if v != nil && v != false {
			result = append(result, e)
		}
	}
	entry.SortEntries(result)
	return result, nil
}

// Text returns the journal file content for the current entries.
func (j *Journal) Text() (string, error) {
	text, err := entry.ToText(j.entries, j.Format, nil)
	if err != nil {
		return "", err
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}

// Save writes the journal file atomically.
func (j *Journal) Save() error {
	text, err := j.Text()
	if err != nil {
		return err
	}

	dir := filepath.Dir(j.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".journal-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), j.Path)
}
