// Package parser provides input loading and the line sequence the passes read from.
package parser

// Line is one raw input line with its position.
type Line struct {
	// Raw is the original line content.
	Raw string

	// Number is the 1-based line number in the input. It doubles as the game ID.
	Number int
}
