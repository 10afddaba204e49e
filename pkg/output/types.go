// Package output provides formatting for pass results.
package output

import (
	"github.com/ccollicutt/cubecheck/pkg/analyzer"
)

// Report is the complete pass output.
type Report struct {
	// Mode is the pass that produced the report.
	Mode analyzer.Mode `json:"mode"`

	// Games lists the contributing games in ascending ID order.
	Games []Game `json:"games"`

	// Total is the final sum.
	Total int `json:"sum"`

	// Colors lists the colors seen. Only set for validate passes.
	Colors []string `json:"colors,omitempty"`

	// Source is the input path.
	Source string `json:"source,omitempty"`
}

// Game is one reported game.
type Game struct {
	ID     int      `json:"id"`
	Tokens []string `json:"tokens"`
	Value  int      `json:"value"`
}

// NewReport creates a Report from a pass result.
func NewReport(result *analyzer.Result) *Report {
	report := &Report{
		Mode:   result.Mode,
		Games:  make([]Game, 0, len(result.Games)),
		Total:  result.Total,
		Colors: result.Colors,
		Source: result.Metadata.Source,
	}

	for _, g := range result.Games {
		report.Games = append(report.Games, Game{ID: g.ID, Tokens: g.Tokens, Value: g.Value})
	}

	return report
}
