// Package engine provides the bounded text-buffer engine behind a notegrid
// note: a line/column grid that can never outgrow the viewport.
//
// The engine is built on several sub-packages:
//
//   - buffer: the Cell/Line grid, edit primitives, and the fit policy
//   - cursor: line/column positions and clamping
//   - history: snapshot-based undo/redo with keystroke throttling
//   - codec: the two-byte-per-character persisted format
//   - ascii: folding typed input down to the stored character set
//
// # Basic Usage
//
// Create an engine and type into it:
//
//	e := engine.New(engine.WithViewport(40, 12))
//	for _, r := range "groceries" {
//		e.InsertChar(r)
//	}
//	e.InsertLine()
//	data := e.Serialize() // persisted form
//	e.MarkSaved()
//
// Reopen a persisted note:
//
//	e, err := engine.Load(data, engine.WithViewport(40, 12))
//
// A note larger than the viewport is truncated for display and the engine
// enters ModeViewable: the content can be read but not edited. Reopening
// the note with a larger viewport restores editing.
//
// # Edit Semantics
//
// Every edit operation is total over valid state: boundary conditions (start
// or end of the note, full line, full buffer) are no-ops, never errors.
// Typing respects the insert/overwrite mode and the active color latch;
// non-ASCII input is folded to its closest ASCII letter.
//
// # Undo/Redo
//
// The engine snapshots state before edits: unconditionally for coarse edits
// (line insert/delete, word delete, line moves) and once per throttle window
// for plain keystrokes. Undo and redo swap whole snapshots; any new edit
// invalidates the redo stack.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Each open note owns exactly one
// engine instance, driven synchronously by the caller's input loop.
package engine
