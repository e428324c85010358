// Package ingestion normalizes pasted or fetched job description text
// before it reaches the keyword extractor.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, collapses runs of spaces, trims
// trailing whitespace per line, and reduces blank-line runs to one.
// Bullet markers are kept; extraction treats them as word boundaries
// anyway.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = multiSpaceRe.ReplaceAllString(line, " ")
		lines[i] = strings.TrimRight(line, " ")
	}
	content = strings.Join(lines, "\n")

	content = multiBlankRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
