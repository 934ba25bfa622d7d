package extract

import "strings"

// Vehicle is one structured entry from a scanned yard-inventory list.
//
// A Vehicle is built exactly once from a single input line and never
// merged with another. Callers may edit FullText afterwards; the
// structured fields are not re-derived from such edits and may go stale,
// which is accepted because only FullText is ever re-displayed.
type Vehicle struct {
	// Year is the four-digit model year, or empty when no year was found
	// in the line.
	Year string `json:"year"`

	// Make is the first token after the year, or empty.
	Make string `json:"make"`

	// Model is the remaining tokens joined by single spaces, or empty.
	Model string `json:"model"`

	// FullText is the canonical "{year} {make} {model}" rendering with
	// empty fields omitted. It is never empty for an emitted record and
	// is the display and edit surface consumed by callers.
	FullText string `json:"full_text"`
}

// ParseVehicleList runs the full extraction pipeline over raw OCR text
// and returns one Vehicle per surviving line, in input order. There is no
// deduplication and no cross-line merging, and the function never fails:
// any input yields a (possibly empty) valid list.
func ParseVehicleList(raw string) []Vehicle {
	lines := Segment(Normalize(raw))
	vehicles := make([]Vehicle, 0, len(lines))
	for _, line := range lines {
		if v, ok := assembleLine(line); ok {
			vehicles = append(vehicles, v)
		}
	}
	return vehicles
}

// assembleLine builds a Vehicle from one candidate line. The second
// return is false when the line yields no usable record: a year with
// nothing after it, or a no-year line that cleans to nothing.
func assembleLine(line string) (Vehicle, bool) {
	match, ok := ExtractYear(line)
	if !ok {
		cleaned := Clean(line)
		if cleaned == "" {
			return Vehicle{}, false
		}
		return Vehicle{FullText: cleaned}, true
	}

	rest := Clean(SplitMakeModel(match.Rest))
	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		// A bare year is not a usable record.
		return Vehicle{}, false
	}

	v := Vehicle{Year: match.Year, Make: tokens[0]}
	if len(tokens) > 1 {
		v.Model = strings.Join(tokens[1:], " ")
	}
	v.FullText = renderFullText(v)
	return v, true
}

// renderFullText joins the non-empty structured fields with single
// spaces.
func renderFullText(v Vehicle) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{v.Year, v.Make, v.Model} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// FormatVehicleList renders a vehicle list with one FullText per line,
// for display and debugging.
func FormatVehicleList(vehicles []Vehicle) string {
	lines := make([]string, len(vehicles))
	for i, v := range vehicles {
		lines[i] = v.FullText
	}
	return strings.Join(lines, "\n")
}
