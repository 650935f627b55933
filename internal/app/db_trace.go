package app

import (
	"regexp"
	"strings"
)

// Span attributes have provider-side size limits; long multi-row inserts
// get collapsed and cut.
const tracedQueryLimit = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	compact := collapseWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(compact) > tracedQueryLimit {
		return compact[:tracedQueryLimit] + "..."
	}
	return compact
}
