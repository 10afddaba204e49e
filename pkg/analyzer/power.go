package analyzer

import (
	"context"
	"log/slog"

	"github.com/ccollicutt/cubecheck/pkg/game"
)

// PowerEngine sums the power of every game: the product of the smallest cube
// counts per color that would have made the game possible.
type PowerEngine struct {
	limits game.Limits
	log    *slog.Logger

	games []GameResult
	total int
}

// NewPowerEngine creates a power engine. limits supplies the set of colors.
func NewPowerEngine(limits game.Limits, log *slog.Logger) *PowerEngine {
	return &PowerEngine{limits: limits, log: log}
}

// Mode returns ModePower.
func (e *PowerEngine) Mode() Mode {
	return ModePower
}

// Process adds one game's power.
func (e *PowerEngine) Process(_ context.Context, g *game.Game) error {
	power, err := e.limits.Power(g)
	if err != nil {
		return err
	}

	e.log.Debug("game.power", "id", g.ID, "power", power)
	e.games = append(e.games, GameResult{ID: g.ID, Tokens: g.Tokens, Value: power})
	e.total += power
	return nil
}

// Finalize returns every game's power and their sum.
func (e *PowerEngine) Finalize(_ context.Context) (*Result, error) {
	return &Result{Mode: ModePower, Games: e.games, Total: e.total}, nil
}

// Reset clears accumulated games.
func (e *PowerEngine) Reset() {
	e.games = nil
	e.total = 0
}
