package news

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy    = bluemonday.StrictPolicy()
	reTruncMarker   = regexp.MustCompile(`\s*\[\+\d+ chars\]\s*$`)
	reMultipleSpace = regexp.MustCompile(`\s+`)
)

// CleanText strips HTML markup and the "[+123 chars]" truncation marker NewsAPI appends to content,
// and collapses whitespace
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(strictPolicy.Sanitize(s))
	s = reTruncMarker.ReplaceAllString(s, "")
	return strings.TrimSpace(reMultipleSpace.ReplaceAllString(s, " "))
}
