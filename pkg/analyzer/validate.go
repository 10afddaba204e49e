package analyzer

import (
	"context"
	"sort"

	"github.com/ccollicutt/cubecheck/pkg/game"
)

// ValidateEngine records every game that parses, without checking limits.
type ValidateEngine struct {
	games  []GameResult
	total  int
	colors map[string]bool
}

// NewValidateEngine creates a validation engine.
func NewValidateEngine() *ValidateEngine {
	return &ValidateEngine{colors: make(map[string]bool)}
}

// Mode returns ModeValidate.
func (e *ValidateEngine) Mode() Mode {
	return ModeValidate
}

// Process records the game's observation count and colors.
func (e *ValidateEngine) Process(_ context.Context, g *game.Game) error {
	for _, obs := range g.Observations {
		e.colors[obs.Color] = true
	}
	n := len(g.Observations)
	e.games = append(e.games, GameResult{ID: g.ID, Tokens: g.Tokens, Value: n})
	e.total += n
	return nil
}

// Finalize returns the parsed games, the total observation count, and the colors seen.
func (e *ValidateEngine) Finalize(_ context.Context) (*Result, error) {
	colors := make([]string, 0, len(e.colors))
	for c := range e.colors {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	return &Result{Mode: ModeValidate, Games: e.games, Total: e.total, Colors: colors}, nil
}

// Reset clears accumulated state.
func (e *ValidateEngine) Reset() {
	e.games = nil
	e.total = 0
	e.colors = make(map[string]bool)
}
