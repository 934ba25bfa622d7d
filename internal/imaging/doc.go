// Package imaging loads and prepares yard-list photos for OCR.
//
// Inventory lists arrive as phone photos: uneven lighting, slight blur,
// low contrast between ink and paper. The package provides a thread-safe
// decoded-image cache, luminance analysis for picking a binarization
// threshold, and a preprocessing pipeline (grayscale, upscale, denoise,
// contrast, threshold) that raises Tesseract's hit rate on printed lists.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner.
//
// # Thread Safety
//
// Cache is safe for concurrent use. The preprocessing functions are
// stateless and never mutate their input image.
package imaging
