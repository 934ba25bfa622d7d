// Package extract turns raw OCR output from a photographed vehicle-yard
// inventory list into an ordered list of structured Vehicle records.
//
// The pipeline is a single synchronous pass:
//
//	Normalize -> Segment -> per line: ExtractYear -> SplitMakeModel -> Clean -> assemble
//
// Normalize repairs a small fixed set of OCR misreads and upper-cases the
// text. Segment splits it into candidate lines and drops yard signage
// ("YARD", "ROW 3", location headers) and fragments too short to be a
// listing. ExtractYear locates a model year, either a full 19xx/20xx token
// or a two-digit year in the "lot number + year" pattern common on printed
// yard sheets. SplitMakeModel re-inserts the space OCR sometimes drops
// between a known manufacturer name and the model. Clean strips residual
// punctuation noise.
//
// Lines with a year become {year, make, model} records; lines without one
// become verbatim fallback records so nothing legible is lost. Either way
// the record's FullText is the display and edit surface consumed by
// callers; downstream edits to FullText do not re-derive the structured
// fields.
//
// # Error Handling
//
// The package never returns an error. Malformed input produces a shorter
// (possibly empty) output list, not a failure: a missing year, an
// unrecognized make, or a line that cleans to nothing are all ordinary
// outcomes.
//
// # Concurrency
//
// All functions are pure and keep no state between calls, so the package
// is safe for concurrent use with independent inputs.
package extract
