package parser

import "context"

// Source provides an iterator over input lines.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)
}
