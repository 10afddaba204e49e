// Package game provides the cube game record, its parser, and the per-color limit checks.
package game

// Color names used by the default limits.
const (
	Red   = "red"
	Green = "green"
	Blue  = "blue"
)

// Observation is a single "<count> <color>" pair drawn from a game.
type Observation struct {
	Count int
	Color string
}

// Game is one parsed input line.
type Game struct {
	// ID is the 1-based position of the line in the input, not the number
	// written after "Game". The two are assumed to coincide and are never
	// cross-checked.
	ID int

	// Tokens is the flat token sequence after separators were removed.
	Tokens []string

	// Observations are the (count, color) pairs in input order.
	Observations []Observation
}
