// Package ocr extracts text from yard-list scans using Tesseract.
//
// The package wraps gosseract/v2 and produces the (text, confidence)
// pair the extraction engine consumes: all recognized text with its
// original line structure, plus a mean word confidence for display. The
// confidence never influences extraction.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The default language is English ("eng"); other Tesseract language
// codes work when their data files are installed.
//
// # Temporary Files
//
// ScanRegion writes a temporary PNG because Tesseract consumes file
// paths. The file is deleted when the call returns.
package ocr
