package engine

// Default configuration values.
const (
	DefaultWidth  = 48
	DefaultHeight = 16
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithViewport sets the buffer dimensions in character cells.
// Non-positive dimensions are ignored.
func WithViewport(width, height int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
		if height > 0 {
			e.height = height
		}
	}
}

// WithOverwrite sets the initial typing mode.
func WithOverwrite(overwrite bool) Option {
	return func(e *Engine) {
		e.overwrite = overwrite
	}
}

// WithColorResolver sets the palette mapping symbolic color selections to
// stored tags. Nil resolvers are ignored.
func WithColorResolver(r ColorResolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithHistoryCapacity sets the maximum number of undo entries.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.historyCapacity = n
		}
	}
}

// WithSnapshotEvery sets the keystroke throttle: one history snapshot per n
// character-level edits.
func WithSnapshotEvery(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.snapshotEvery = n
		}
	}
}
