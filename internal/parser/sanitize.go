package parser

import (
	"regexp"
	"strings"
)

// fencePattern matches a Markdown code fence with an optional language tag.
var fencePattern = regexp.MustCompile("```[A-Za-z0-9_+#.-]*")

// Sanitize removes every code fence delimiter from model output and trims the
// surrounding whitespace. Nothing else is normalized.
func Sanitize(text string) string {
	// Removing a fence can join backticks into a new one ("``" + "```json" + "`"),
	// so strip until none is left.
	for strings.Contains(text, "```") {
		text = fencePattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
