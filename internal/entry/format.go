package entry

import "fmt"

// Format identifies one of the two supported surface syntaxes.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatRST      Format = "rst"
)

const (
	markdownAttributeMarker = "<!--- attributes --->"
	markdownSeparator       = "<!--- end-entry --->"
	rstAttributeMarker      = ".. code-block:: yaml"
	rstSeparator            = ".. end-entry"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "rst":
		return FormatRST, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

func (f Format) String() string {
	return string(f)
}

// Separator returns the literal marking entry boundaries in a multi-entry document.
func (f Format) Separator() string {
	if f == FormatRST {
		return rstSeparator
	}
	return markdownSeparator
}

// AttributeMarker returns the literal starting the metadata block of an entry.
func (f Format) AttributeMarker() string {
	if f == FormatRST {
		return rstAttributeMarker
	}
	return markdownAttributeMarker
}

// Extension returns the file extension commonly used for the format.
func (f Format) Extension() string {
	if f == FormatRST {
		return ".rst"
	}
	return ".md"
}

// Parse converts the raw text of a single entry.
func Parse(raw string, f Format) (*Entry, error) {
	switch f {
	case FormatRST:
		return ParseRST(raw)
	case FormatMarkdown:
		return ParseMarkdown(raw)
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// Render serializes the entry in the given format. See ToMarkdown.
func (e *Entry) Render(f Format, headings []string, force bool) (string, error) {
	switch f {
	case FormatRST:
		return e.ToRST(headings, force)
	case FormatMarkdown:
		return e.ToMarkdown(headings, force)
	}
	return "", fmt.Errorf("unsupported format %q", f)
}
