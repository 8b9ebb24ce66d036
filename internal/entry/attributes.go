package entry

import (
	"bytes"
	"strings"

	"github.com/dailynotes/daily/pkg/text"
	"gopkg.in/yaml.v3"
)

// Attribute blocks are indented under their marker and start with a
// YAML document marker:
//
//	<!--- attributes --->
//	    ---
//	    id: x1
//	    tags:
//	    - shopping
const attributeIndent = "    "

// YAML indentation inside the attribute block
const yamlIndent = 2

// splitAttributeSection separates the entry body from the attribute block.
// The marker must stand on a line of its own; the last marker line wins and
// earlier occurrences are kept as literal body text.
func splitAttributeSection(raw string, marker string) (body string, attrs string) {
	lines := strings.Split(raw, "\n")
	last := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			last = i
		}
	}
	if last == -1 {
		return raw, ""
	}
	return strings.Join(lines[:last], "\n"), strings.Join(lines[last+1:], "\n")
}

// parseAttributes decodes the attribute block into a map.
// A blank block yields an empty map, never an error.
func parseAttributes(block string) (map[string]any, error) {
	if text.IsBlank(block) {
		return map[string]any{}, nil
	}
	block = strings.TrimSpace(text.Unindent(block))

	var attrs map[string]any
	if err := yaml.Unmarshal([]byte(block), &attrs); err != nil {
		return nil, &AttributeError{Err: err}
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs, nil
}

// formatAttributes encodes the attributes as indented lines ready to be
// appended after the attribute marker.
func formatAttributes(attrs map[string]any) ([]string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(attrs); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	lines := []string{attributeIndent + "---"}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		lines = append(lines, attributeIndent+line)
	}
	return lines, nil
}
