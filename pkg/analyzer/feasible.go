package analyzer

import (
	"context"
	"log/slog"

	"github.com/ccollicutt/cubecheck/pkg/game"
)

// FeasibleEngine sums the IDs of games whose observations never exceed the limits.
type FeasibleEngine struct {
	limits game.Limits
	log    *slog.Logger

	games []GameResult
	total int
}

// NewFeasibleEngine creates a feasibility engine checking against limits.
func NewFeasibleEngine(limits game.Limits, log *slog.Logger) *FeasibleEngine {
	return &FeasibleEngine{limits: limits, log: log}
}

// Mode returns ModeFeasible.
func (e *FeasibleEngine) Mode() Mode {
	return ModeFeasible
}

// Process checks one game and records it if it is feasible.
func (e *FeasibleEngine) Process(_ context.Context, g *game.Game) error {
	ok, err := e.limits.Feasible(g)
	if err != nil {
		return err
	}

	e.log.Debug("game.checked", "id", g.ID, "feasible", ok)
	if !ok {
		return nil
	}

	e.games = append(e.games, GameResult{ID: g.ID, Tokens: g.Tokens, Value: g.ID})
	e.total += g.ID
	return nil
}

// Finalize returns the feasible games and the sum of their IDs.
func (e *FeasibleEngine) Finalize(_ context.Context) (*Result, error) {
	return &Result{Mode: ModeFeasible, Games: e.games, Total: e.total}, nil
}

// Reset clears accumulated games.
func (e *FeasibleEngine) Reset() {
	e.games = nil
	e.total = 0
}
