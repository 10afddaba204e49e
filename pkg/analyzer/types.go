// Package analyzer runs a single pass over input lines and accumulates a result.
package analyzer

import (
	"fmt"
	"time"
)

// Mode enumerates the passes an Analyzer can run.
type Mode string

const (
	// ModeFeasible sums the IDs of games that stay within every limit.
	ModeFeasible Mode = "feasible"

	// ModePower sums, over all games, the product of the per-color maxima.
	ModePower Mode = "power"

	// ModeValidate parses every game without checking limits.
	ModeValidate Mode = "validate"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFeasible, ModePower, ModeValidate:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q (must be feasible, power, or validate)", s)
	}
}

// GameResult is a game that contributed to the total.
type GameResult struct {
	// ID is the game's 1-based line position.
	ID int

	// Tokens is the game's token sequence.
	Tokens []string

	// Value is what the game added to the total: its ID in feasible mode,
	// its power in power mode, and its observation count in validate mode.
	Value int
}

// Result contains the complete output of a pass.
type Result struct {
	// Mode is the pass that produced this result.
	Mode Mode

	// Games lists contributing games in ascending ID order.
	Games []GameResult

	// Total is the sum of every GameResult.Value.
	Total int

	// Colors lists the distinct colors seen, sorted. Only set in validate mode.
	Colors []string

	// Metadata provides context about the pass.
	Metadata Metadata
}

// Metadata provides context about the pass.
type Metadata struct {
	// Source is the input path, if known.
	Source string

	// LinesProcessed is the number of lines read before the pass stopped.
	LinesProcessed int

	// StartTime is when the pass began.
	StartTime time.Time

	// EndTime is when the pass completed.
	EndTime time.Time
}
