package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// CenturyCutoff is the inclusive upper bound for two-digit years mapped
// into the 2000s; values above it map into the 1900s. Yard stock is
// predominantly post-2000, so the boundary is hand-tuned rather than
// derived from the calendar; genuine 1931-1999 two-digit years will be
// misread until the cutoff is revisited.
const CenturyCutoff = 30

// YearMatch is the result of locating a year token within a line.
type YearMatch struct {
	// Year is the four-digit model year.
	Year string `json:"year"`

	// Rest is the text after the year token, trimmed.
	Rest string `json:"rest"`
}

var (
	// fourDigitYear matches a bounded 19xx or 20xx token.
	fourDigitYear = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	// twoDigitYear matches a digit pair preceded by a non-digit (or the
	// start of the line) and followed by a letter, directly or across a
	// single space. Requiring the trailing letter keeps yard lot numbers
	// from parsing as years.
	twoDigitYear = regexp.MustCompile(`(?:^|[^0-9])([0-9]{2}) ?[A-Za-z]`)
)

// ExtractYear locates a year token in a line and splits the line into
// the year and the remaining text. A full 19xx/20xx token wins; otherwise
// a contextual two-digit year is tried with century inference around
// CenturyCutoff. The second return is false when the line holds no year,
// in which case the caller treats the whole line as an unparsed record.
func ExtractYear(line string) (YearMatch, bool) {
	if loc := fourDigitYear.FindStringIndex(line); loc != nil {
		return YearMatch{
			Year: line[loc[0]:loc[1]],
			Rest: strings.TrimSpace(line[loc[1]:]),
		}, true
	}

	if loc := twoDigitYear.FindStringSubmatchIndex(line); loc != nil {
		digits := line[loc[2]:loc[3]]
		value, _ := strconv.Atoi(digits)
		century := "19"
		if value <= CenturyCutoff {
			century = "20"
		}
		return YearMatch{
			Year: century + digits,
			Rest: strings.TrimSpace(line[loc[3]:]),
		}, true
	}

	return YearMatch{}, false
}
