// Package export renders journal entries as a static HTML site.
package export

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gosimple/slug"

	"github.com/dailynotes/daily/internal/entry"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// Export writes one HTML page per entry plus an index page in dir and
// returns the path of the index page.
func Export(entries []*entry.Entry, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	sorted := make([]*entry.Entry, len(entries))
	copy(sorted, entries)
	entry.SortEntries(sorted)

	var links []string
	for _, e := range sorted {
		filename := Filename(e)
		body := ToHTML(entryMarkdown(e))
		page := fmt.Sprintf(pageTemplate, html.EscapeString(e.Title), body)
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(page), 0644); err != nil {
			return "", err
		}
		links = append(links, fmt.Sprintf(`<li><a href="%s">%s</a></li>`,
			filename, html.EscapeString(e.Title)))
	}

	index := fmt.Sprintf(pageTemplate, "Journal",
		"<h1>Journal</h1>\n<ul>\n"+strings.Join(links, "\n")+"\n</ul>")
	indexPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(indexPath, []byte(index), 0644); err != nil {
		return "", err
	}
	return indexPath, nil
}

// Filename returns the page name of an entry, derived from its title.
func Filename(e *entry.Entry) string {
	return slug.Make(e.Title) + ".html"
}

// ToHTML renders a Markdown document as an HTML fragment.
func ToHTML(md string) string {
	return strings.TrimSpace(string(markdown.ToHTML([]byte(md), nil, nil)))
}

// entryMarkdown rebuilds the displayable part of an entry as Markdown,
// without the attribute block. RST journals are exported through the
// same path as heading contents are plain text.
func entryMarkdown(e *entry.Entry) string {
	var s []string
	s = append(s, "# "+e.Title)

	if _, notes, ok := e.Headings.GetFold(entry.NotesHeading); ok {
		s = append(s, "", notes)
	}
	for _, name := range e.Headings.Names() {
		if strings.EqualFold(name, entry.NotesHeading) {
			continue
		}
		content, _ := e.Headings.Get(name)
		s = append(s, "", "## "+name, "", content)
	}
	if tags := e.Tags(); len(tags) > 0 {
		s = append(s, "", "Tags: *"+strings.Join(tags, "*, *")+"*")
	}
	return strings.Join(s, "\n") + "\n"
}
