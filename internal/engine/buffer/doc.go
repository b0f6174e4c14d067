// Package buffer implements the bounded line/column grid underlying a note.
//
// A Buffer is an ordered slice of Lines, each Line an ordered slice of Cells
// (7-bit ASCII character plus an optional ColorTag). The package provides the
// raw edit primitives (cell splice/overwrite/delete, line split/merge/swap),
// deep cloning for undo snapshots, word-boundary scanning, and the
// truncation-on-overflow fit policy. Dimension limits and cursor validity are
// enforced by the engine package, which is the only intended caller of the
// mutating primitives.
package buffer
