package extract

import "strings"

// knownMakes is the closed set of manufacturer names the splitter can
// repair, in match order. Order is the tie-break when one listed make is
// a prefix of another, so longer variants come before their short forms.
var knownMakes = []string{
	"CHEVROLET",
	"CHEVY",
	"CHRYSLER",
	"CADILLAC",
	"BUICK",
	"PONTIAC",
	"OLDSMOBILE",
	"SATURN",
	"GMC",
	"FORD",
	"MERCURY",
	"LINCOLN",
	"DODGE",
	"JEEP",
	"TOYOTA",
	"HONDA",
	"NISSAN",
	"MAZDA",
	"SUBARU",
	"MITSUBISHI",
	"SUZUKI",
	"ISUZU",
	"HYUNDAI",
	"KIA",
	"VOLKSWAGEN",
	"VOLVO",
	"BMW",
	"MERCEDES",
	"LEXUS",
}

// SplitMakeModel repairs a dropped space between a known make and the
// model that follows it ("CHEVROLETIMPALA" -> "CHEVROLET IMPALA"). The
// first listed make that is a strict prefix of the text with no
// separating space wins; text that already has the space, or starts with
// no known make, is returned unchanged.
func SplitMakeModel(text string) string {
	upper := strings.ToUpper(text)
	for _, name := range knownMakes {
		if len(upper) <= len(name) || !strings.HasPrefix(upper, name) {
			continue
		}
		if upper[len(name)] == ' ' {
			continue
		}
		return text[:len(name)] + " " + text[len(name):]
	}
	return text
}
