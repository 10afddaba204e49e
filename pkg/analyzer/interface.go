package analyzer

import (
	"context"

	"github.com/ccollicutt/cubecheck/pkg/game"
)

// Engine accumulates one kind of result from parsed games.
type Engine interface {
	// Mode returns the pass this engine implements.
	Mode() Mode

	// Process handles a single game, updating internal state.
	// Any error is fatal to the pass.
	Process(ctx context.Context, g *game.Game) error

	// Finalize returns the accumulated result.
	// Called after all lines have been processed.
	Finalize(ctx context.Context) (*Result, error)

	// Reset clears internal state for reuse.
	Reset()
}
