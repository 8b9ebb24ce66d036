package text

import "strings"

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// TrimLinePrefix removes the prefix at the beginning of every line where present.
func TrimLinePrefix(text string, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

// Unindent removes the largest indentation common to all non-blank lines.
func Unindent(text string) string {
	lines := strings.Split(text, "\n")

	margin := -1
	for _, line := range lines {
		if IsBlank(line) {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin == -1 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return text
	}

	for i, line := range lines {
		if IsBlank(line) {
			lines[i] = line
			continue
		}
		lines[i] = line[margin:]
	}
	return strings.Join(lines, "\n")
}
