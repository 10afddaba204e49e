package analyzer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/cubecheck/pkg/game"
	"github.com/ccollicutt/cubecheck/pkg/logger"
	"github.com/ccollicutt/cubecheck/pkg/parser"
)

const scenarioA = `Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

// errSource fails after returning its lines.
type errSource struct {
	lines []*parser.Line
	index int
	err   error
}

func (s *errSource) Next(ctx context.Context) (*parser.Line, error) {
	if s.index >= len(s.lines) {
		return nil, s.err
	}
	line := s.lines[s.index]
	s.index++
	return line, nil
}

func analyze(t *testing.T, mode Mode, text string) (*Result, error) {
	t.Helper()
	a, err := NewAnalyzer(mode)
	require.NoError(t, err)
	return a.Analyze(context.Background(), parser.NewLineSource(text))
}

func gameIDs(r *Result) []int {
	ids := make([]int, 0, len(r.Games))
	for _, g := range r.Games {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestNewAnalyzer_UnknownMode(t *testing.T) {
	_, err := NewAnalyzer(Mode("bogus"))
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"feasible", "power", "validate"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("sum")
	assert.Error(t, err)
}

func TestAnalyze_Feasible_ScenarioA(t *testing.T) {
	result, err := analyze(t, ModeFeasible, scenarioA)
	require.NoError(t, err)

	assert.Equal(t, ModeFeasible, result.Mode)
	assert.Equal(t, []int{1, 2, 5}, gameIDs(result))
	assert.Equal(t, 8, result.Total)
	assert.Equal(t, 5, result.Metadata.LinesProcessed)
	assert.Equal(t, []string{"3", "red", "4", "blue", "1", "red", "2", "green", "6", "blue", "2", "green"}, result.Games[0].Tokens)
}

// The total always equals the sum of the reported IDs, which ascend without repeats.
func TestAnalyze_Feasible_TotalMatchesGames(t *testing.T) {
	result, err := analyze(t, ModeFeasible, scenarioA)
	require.NoError(t, err)

	sum, prev := 0, 0
	for _, g := range result.Games {
		assert.Greater(t, g.ID, prev)
		assert.Equal(t, g.ID, g.Value)
		sum += g.ID
		prev = g.ID
	}
	assert.Equal(t, result.Total, sum)
}

func TestAnalyze_Feasible_UnknownColorAborts(t *testing.T) {
	text := "Game 1: 1 red\nGame 2: 5 yellow\nGame 3: 1 red\n"

	result, err := analyze(t, ModeFeasible, text)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, game.IsKind(err, game.KindUnknownColor))
}

func TestAnalyze_Feasible_MalformedLineAborts(t *testing.T) {
	text := "Game 1: 1 red\nGame 2: x red\n"

	result, err := analyze(t, ModeFeasible, text)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, game.IsKind(err, game.KindParse))
}

func TestAnalyze_Feasible_StopsAtBlankLine(t *testing.T) {
	text := "Game 1: 1 red\nGame 2: 20 red\n\nGame 4: 1 red\nGame 5: 5 yellow\n"

	result, err := analyze(t, ModeFeasible, text)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, gameIDs(result))
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 2, result.Metadata.LinesProcessed)
}

func TestAnalyze_Feasible_Idempotent(t *testing.T) {
	a, err := NewAnalyzer(ModeFeasible)
	require.NoError(t, err)

	source := parser.NewLineSource(scenarioA)
	first, err := a.Analyze(context.Background(), source)
	require.NoError(t, err)

	source.Reset()
	second, err := a.Analyze(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, first.Games, second.Games)
	assert.Equal(t, first.Total, second.Total)
}

func TestAnalyze_Power_ScenarioA(t *testing.T) {
	result, err := analyze(t, ModePower, scenarioA)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, gameIDs(result))
	assert.Equal(t, 2274, result.Total)
	assert.Equal(t, 36, result.Games[0].Value)
}

func TestAnalyze_Power_UnknownColorAborts(t *testing.T) {
	_, err := analyze(t, ModePower, "Game 1: 20 red, 5 yellow\n")
	assert.True(t, game.IsKind(err, game.KindUnknownColor))
}

func TestAnalyze_Validate(t *testing.T) {
	result, err := analyze(t, ModeValidate, "Game 1: 1 red, 2 blue\nGame 2: 5 yellow\n")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, gameIDs(result))
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, []string{"blue", "red", "yellow"}, result.Colors)
}

func TestAnalyze_SourceError(t *testing.T) {
	boom := errors.New("boom")
	source := &errSource{
		lines: []*parser.Line{{Raw: "Game 1: 1 red", Number: 1}},
		err:   boom,
	}

	a, err := NewAnalyzer(ModeFeasible)
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), source)
	assert.ErrorIs(t, err, boom)
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	a, err := NewAnalyzer(ModeFeasible)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.Analyze(ctx, parser.NewLineSource(scenarioA))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Options(t *testing.T) {
	var buf bytes.Buffer
	a, err := NewAnalyzer(ModeFeasible,
		WithLogger(logger.New(&buf, logger.Config{Debug: true})),
		WithSourceName("games.txt"),
	)
	require.NoError(t, err)
	assert.Equal(t, ModeFeasible, a.Mode())

	result, err := a.Analyze(context.Background(), parser.NewLineSource(scenarioA))
	require.NoError(t, err)

	assert.Equal(t, "games.txt", result.Metadata.Source)
	assert.False(t, result.Metadata.EndTime.Before(result.Metadata.StartTime))
	assert.Contains(t, buf.String(), "msg=game.checked")
	assert.Contains(t, buf.String(), "msg=pass.done")
}
