package ocr

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/otiai10/gosseract/v2"
)

func TestMeanConfidence(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		want  float64
	}{
		{
			"empty list",
			nil,
			0,
		},
		{
			"single word",
			[]Word{{Text: "FORD", Confidence: 0.9}},
			0.9,
		},
		{
			"averages",
			[]Word{
				{Text: "2015", Confidence: 0.8},
				{Text: "FORD", Confidence: 0.6},
			},
			0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := meanConfidence(tt.words)
			if got != tt.want {
				t.Errorf("meanConfidence = %.3f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestWordsFromBoxes(t *testing.T) {
	boxes := []gosseract.BoundingBox{
		{
			Box:        image.Rect(10, 20, 60, 40),
			Word:       "FORD",
			Confidence: 92.5,
		},
		{
			Box:        image.Rect(70, 20, 120, 40),
			Word:       "",
			Confidence: 10,
		},
	}

	words := wordsFromBoxes(boxes)

	if len(words) != 1 {
		t.Fatalf("Expected empty word to be dropped, got %d words", len(words))
	}
	if words[0].Text != "FORD" {
		t.Errorf("Text: got %q, want FORD", words[0].Text)
	}
	if words[0].Confidence != 0.925 {
		t.Errorf("Confidence: got %.3f, want 0.925", words[0].Confidence)
	}
	if words[0].Bounds != (Bounds{X1: 10, Y1: 20, X2: 60, Y2: 40}) {
		t.Errorf("Bounds: got %+v", words[0].Bounds)
	}
}

func TestSaveImageToTemp(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.White)
		}
	}

	path, err := SaveImageToTemp(img, "scan-test")
	if err != nil {
		t.Fatalf("SaveImageToTemp failed: %v", err)
	}
	defer os.Remove(path)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Temp file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Temp file is empty")
	}
}

func TestScan_MissingFile(t *testing.T) {
	if !tesseractAvailable(t) {
		return
	}

	if _, err := Scan("/nonexistent/scan.png", "eng"); err == nil {
		t.Error("Expected error for missing image file")
	}
}

// tesseractAvailable skips the calling test when no usable Tesseract
// installation is present.
func tesseractAvailable(t *testing.T) bool {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skip("Tesseract not available")
		}
	}()

	if Version() == "" {
		t.Skip("Tesseract not available")
		return false
	}
	return true
}
