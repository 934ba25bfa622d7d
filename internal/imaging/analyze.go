package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// maxSamplePixels caps how many pixels AnalyzeExposure visits so large
// photos stay cheap.
const maxSamplePixels = 65536

// ExposureStats summarizes the luminance distribution of a scan.
// Luminance values are Lab L in the range 0..1.
type ExposureStats struct {
	// MeanLuminance is the average luminance of the sampled pixels.
	MeanLuminance float64 `json:"mean_luminance"`

	// MinLuminance is the darkest sampled luminance.
	MinLuminance float64 `json:"min_luminance"`

	// MaxLuminance is the brightest sampled luminance.
	MaxLuminance float64 `json:"max_luminance"`

	// Contrast is MaxLuminance - MinLuminance.
	Contrast float64 `json:"contrast"`

	// SuggestedThreshold is the luminance midpoint scaled to 0..255,
	// usable as a binarization level for black-ink-on-paper scans.
	SuggestedThreshold uint8 `json:"suggested_threshold"`
}

// AnalyzeExposure computes Lab-luminance statistics over the image,
// stepping over pixels so that at most ~64k are sampled. A fully
// transparent image yields zeroed stats.
func AnalyzeExposure(img image.Image) *ExposureStats {
	bounds := img.Bounds()

	step := 1
	for (bounds.Dx()/step)*(bounds.Dy()/step) > maxSamplePixels {
		step++
	}

	var sum float64
	count := 0
	min, max := 1.0, 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel; no meaningful color.
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			count++
			min = math.Min(min, l)
			max = math.Max(max, l)
		}
	}

	if count == 0 {
		return &ExposureStats{}
	}

	mid := (min + max) / 2
	return &ExposureStats{
		MeanLuminance:      sum / float64(count),
		MinLuminance:       min,
		MaxLuminance:       max,
		Contrast:           max - min,
		SuggestedThreshold: uint8(math.Round(mid * 255)),
	}
}
