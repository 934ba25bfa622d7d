package extract

import (
	"regexp"
	"strings"
)

// substitution is one ordered OCR repair rule.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// ocrSubstitutions repairs misreads that show up constantly in scans of
// printed yard lists. Order is fixed; no rule's output can re-trigger an
// earlier or later rule.
var ocrSubstitutions = []substitution{
	{regexp.MustCompile(`\bJOI\b`), "201"}, // "201x" model-year prefix read as letters
	{regexp.MustCompile(`§`), "2"},
	{regexp.MustCompile(`\|`), "1"},
	{regexp.MustCompile(`\bO\b`), "0"}, // standalone letter O
}

// Normalize upper-cases raw OCR text and applies the fixed substitution
// table. Substitutions are applied to the whole text, not per line. No
// other character-level correction is attempted.
func Normalize(raw string) string {
	text := strings.ToUpper(raw)
	for _, sub := range ocrSubstitutions {
		text = sub.pattern.ReplaceAllString(text, sub.replacement)
	}
	return text
}
