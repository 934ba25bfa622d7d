package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// PrepOptions control scan preprocessing.
type PrepOptions struct {
	// MinWidth upscales narrower images to this width before OCR;
	// Tesseract struggles below roughly 300 DPI equivalents. Zero
	// disables upscaling.
	MinWidth int `json:"min_width"`

	// Contrast is the relative contrast change applied after grayscale
	// conversion (-1..1). Zero leaves contrast unchanged.
	Contrast float64 `json:"contrast"`

	// DenoiseRadius is the median-filter radius in pixels. Zero disables
	// denoising.
	DenoiseRadius float64 `json:"denoise_radius"`

	// Binarize thresholds the image to black and white at the analyzed
	// luminance midpoint.
	Binarize bool `json:"binarize"`
}

// DefaultPrepOptions are tuned for phone photos of printed yard lists.
func DefaultPrepOptions() PrepOptions {
	return PrepOptions{
		MinWidth:      1200,
		Contrast:      0.2,
		DenoiseRadius: 1,
	}
}

// PrepResult contains a preprocessed scan encoded for transport.
type PrepResult struct {
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	ImageBase64 string         `json:"image_base64"`
	MimeType    string         `json:"mime_type"`
	Exposure    *ExposureStats `json:"exposure"`
}

// Prepare normalizes a yard-list photo for OCR: grayscale, optional
// upscale, median denoise, contrast stretch and optional threshold
// binarization. The input image is never modified. The returned stats
// describe the original image, before any adjustment.
func Prepare(img image.Image, opts PrepOptions) (image.Image, *ExposureStats) {
	stats := AnalyzeExposure(img)

	var out image.Image = imaging.Grayscale(img)
	if opts.MinWidth > 0 && out.Bounds().Dx() < opts.MinWidth {
		out = imaging.Resize(out, opts.MinWidth, 0, imaging.Lanczos)
	}
	if opts.DenoiseRadius > 0 {
		out = effect.Median(out, opts.DenoiseRadius)
	}
	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast)
	}
	if opts.Binarize {
		out = segment.Threshold(out, stats.SuggestedThreshold)
	}

	return out, stats
}

// PrepareForScan runs Prepare and packages the result as base64 PNG for
// tool responses.
func PrepareForScan(img image.Image, opts PrepOptions) (*PrepResult, error) {
	out, stats := Prepare(img, opts)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode prepared image: %w", err)
	}

	bounds := out.Bounds()
	return &PrepResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Exposure:    stats,
	}, nil
}
