package game

import (
	"fmt"
	"strconv"
	"strings"
)

var separatorStripper = strings.NewReplacer(",", "", ";", "")

// Parse turns one raw line into a Game identified by id.
//
// Everything up to and including the first ':' and the character after it is
// dropped. Commas and semicolons are deleted rather than split on, and the rest
// is split on single spaces. Tokens are then read as (count, color) pairs.
// Colors are not checked against any limits here.
func Parse(id int, raw string) (*Game, error) {
	colon := strings.IndexByte(raw, ':')
	if colon < 0 {
		return nil, parseError(id, ErrMissingColon)
	}

	draws := ""
	if start := colon + 2; start < len(raw) {
		draws = raw[start:]
	}

	tokens := strings.Split(separatorStripper.Replace(draws), " ")
	if len(tokens)%2 != 0 {
		return nil, parseError(id, fmt.Errorf("%w: %d", ErrOddTokens, len(tokens)))
	}

	observations := make([]Observation, 0, len(tokens)/2)
	for j := 0; j < len(tokens); j += 2 {
		count, err := strconv.Atoi(tokens[j])
		if err != nil {
			return nil, parseError(id, fmt.Errorf("count %q: %w", tokens[j], err))
		}
		observations = append(observations, Observation{Count: count, Color: tokens[j+1]})
	}

	return &Game{
		ID:           id,
		Tokens:       tokens,
		Observations: observations,
	}, nil
}

func parseError(line int, err error) error {
	return &Error{Op: "parse", Kind: KindParse, Line: line, Err: err}
}
