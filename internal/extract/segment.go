package extract

import (
	"regexp"
	"strings"
)

// minLineLength is the shortest trimmed line that can still be a vehicle
// listing. Anything shorter is fragment noise.
const minLineLength = 5

// newlineRun splits text on one or more newline characters.
var newlineRun = regexp.MustCompile(`\n+`)

// noiseMarkers flag lines that are yard signage rather than vehicle
// entries. "Vehicle" is compared against already upper-cased text and so
// never matches; it is kept as-is to stay behavior-compatible with the
// list formats this table was tuned on.
var noiseMarkers = []string{"YARD", "ROW", "LOCAT", "Vehicle"}

// Segment splits normalized text into candidate vehicle lines, dropping
// noise lines. Surviving lines keep their input order and are returned
// trimmed.
func Segment(text string) []string {
	lines := newlineRun.Split(text, -1)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < minLineLength {
			continue
		}
		if isNoiseLine(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return kept
}

// isNoiseLine reports whether a line contains any noise marker.
func isNoiseLine(line string) bool {
	for _, marker := range noiseMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
