package normalize

import "strings"

// Lines splits raw OCR output into trimmed, non-empty lines in document
// order. OCR engines emit a lot of blank and whitespace-only lines between
// text blocks; downstream field extraction only cares about the lines that
// actually carry text.
func Lines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r", "")
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lines = append(lines, p)
	}
	return lines
}

// CollapseSpaces squashes runs of whitespace inside a line to single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
