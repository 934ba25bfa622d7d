// Package server implements the MCP (Model Context Protocol) server that
// exposes the yard-scan toolchain.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per
// line. Logging goes to stderr so stdout stays clean for the protocol.
//
// # Tools
//
// The tool surface follows the scan pipeline:
//
//   - image_load: load an inventory photo and return its metadata
//   - image_prepare: preprocess a photo for OCR (grayscale, denoise,
//     contrast, optional binarization)
//   - scan_text: run OCR over the photo (or a region) and return text
//     with a mean confidence score
//   - vehicle_extract: run the extraction engine over raw OCR text
//   - vehicle_format: render a vehicle list one line per record
//   - vehicle_scan: the whole pipeline, photo path in, vehicle list out
//   - marketplace_search: query the marketplace with a vehicle's full
//     text plus exclusion keywords
//
// marketplace_search requires the YARDSCAN_SEARCH_URL environment
// variable; without it the tool reports an error and everything else
// keeps working offline.
package server
