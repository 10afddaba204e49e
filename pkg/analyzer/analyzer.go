package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ccollicutt/cubecheck/pkg/game"
	"github.com/ccollicutt/cubecheck/pkg/logger"
	"github.com/ccollicutt/cubecheck/pkg/parser"
)

// Analyzer drives one engine over a line source.
type Analyzer struct {
	engine Engine
	limits game.Limits

	// Options
	log    *slog.Logger
	source string
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger used for per-game debug records.
func WithLogger(l *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSourceName records the input path in the result metadata.
func WithSourceName(path string) AnalyzerOption {
	return func(a *Analyzer) {
		a.source = path
	}
}

// NewAnalyzer creates an analyzer for the given mode. The limits are always
// game.DefaultLimits.
func NewAnalyzer(mode Mode, opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		limits: game.DefaultLimits(),
		log:    logger.Discard(),
	}

	// Apply options
	for _, opt := range opts {
		opt(a)
	}

	engine, err := createEngine(mode, a.limits, a.log)
	if err != nil {
		return nil, err
	}
	a.engine = engine

	return a, nil
}

// createEngine creates the engine for a mode.
func createEngine(mode Mode, limits game.Limits, log *slog.Logger) (Engine, error) {
	switch mode {
	case ModeFeasible:
		return NewFeasibleEngine(limits, log), nil
	case ModePower:
		return NewPowerEngine(limits, log), nil
	case ModeValidate:
		return NewValidateEngine(), nil
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
}

// Mode returns the pass this analyzer runs.
func (a *Analyzer) Mode() Mode {
	return a.engine.Mode()
}

// Analyze reads lines until the source ends, parsing each into a game and
// feeding it to the engine. The first error aborts the pass; no partial
// result is returned.
func (a *Analyzer) Analyze(ctx context.Context, source parser.Source) (*Result, error) {
	start := time.Now()
	a.engine.Reset()

	lines := 0
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		lines++

		g, err := game.Parse(line.Number, line.Raw)
		if err != nil {
			return nil, err
		}

		if err := a.engine.Process(ctx, g); err != nil {
			return nil, err
		}
	}

	result, err := a.engine.Finalize(ctx)
	if err != nil {
		return nil, fmt.Errorf("finalizing %s pass: %w", a.engine.Mode(), err)
	}

	result.Metadata = Metadata{
		Source:         a.source,
		LinesProcessed: lines,
		StartTime:      start,
		EndTime:        time.Now(),
	}

	a.log.Debug("pass.done", "mode", result.Mode, "lines", lines, "total", result.Total)
	return result, nil
}
