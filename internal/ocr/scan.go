package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Bounds is a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Word is one recognized word with its location and confidence.
type Word struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around the word in the image.
	Bounds Bounds `json:"bounds"`
}

// ScanResult is the OCR output consumed by the extraction engine.
type ScanResult struct {
	// Text is all recognized text with original spacing and newlines.
	Text string `json:"text"`

	// Confidence is the mean word confidence (0.0 to 1.0). It is a
	// display value only; extraction never branches on it.
	Confidence float64 `json:"confidence"`

	// Words lists individual words with bounding boxes. May be empty
	// when box extraction fails; Text is still populated.
	Words []Word `json:"words"`
}

// Scan performs OCR on an image file.
//
// language is a Tesseract language code such as "eng"; the matching data
// files must be installed. If word-level bounding box extraction fails,
// the text is still returned with an empty word list and zero
// confidence.
func Scan(imagePath, language string) (*ScanResult, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return &ScanResult{Text: text, Words: []Word{}}, nil
	}

	words := wordsFromBoxes(boxes)
	return &ScanResult{
		Text:       text,
		Confidence: meanConfidence(words),
		Words:      words,
	}, nil
}

// ScanRegion performs OCR on a rectangular region of an in-memory image.
//
// The region is cropped, written to a temporary PNG (Tesseract consumes
// file paths) and scanned; word bounding boxes are shifted back into the
// source image's coordinates before returning.
func ScanRegion(img image.Image, x1, y1, x2, y2 int, language string) (*ScanResult, error) {
	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	tmpPath, err := SaveImageToTemp(cropped, "scan-region")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	result, err := Scan(tmpPath, language)
	if err != nil {
		return nil, err
	}

	for i := range result.Words {
		result.Words[i].Bounds.X1 += x1
		result.Words[i].Bounds.Y1 += y1
		result.Words[i].Bounds.X2 += x1
		result.Words[i].Bounds.Y2 += y1
	}

	return result, nil
}

// Version returns the installed Tesseract version string.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// wordsFromBoxes converts gosseract bounding boxes to Words, dropping
// empty entries.
func wordsFromBoxes(boxes []gosseract.BoundingBox) []Word {
	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		words = append(words, Word{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}
	return words
}

// meanConfidence averages word confidences; an empty list yields zero.
func meanConfidence(words []Word) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += w.Confidence
	}
	return sum / float64(len(words))
}

// SaveImageToTemp writes an image to a temporary PNG file and returns
// its path. The caller removes the file after use.
func SaveImageToTemp(img image.Image, prefix string) (string, error) {
	f, err := os.CreateTemp("", fmt.Sprintf("%s-*.png", prefix))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := f.Name()

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return filepath.Clean(tmpPath), nil
}
