package extract

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"collapses whitespace runs",
			"CHEVY   IMPALA\tLS",
			"CHEVY IMPALA LS",
		},
		{
			"strips punctuation",
			"2015, CHEVY* IMPALA!",
			"2015 CHEVY IMPALA",
		},
		{
			"keeps hyphens",
			"F-150 XLT",
			"F-150 XLT",
		},
		{
			"trims edges",
			"   FORD FOCUS   ",
			"FORD FOCUS",
		},
		{
			"punctuation only cleans to empty",
			"!@#$%^&*()",
			"",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
