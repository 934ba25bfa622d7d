package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// disallowedChars drops everything that is not a letter, digit,
	// whitespace or hyphen.
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9\s-]`)
)

// Clean collapses whitespace runs to single spaces, strips punctuation
// noise and trims the result.
func Clean(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = disallowedChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
