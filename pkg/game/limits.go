package game

import (
	"fmt"
	"sort"
)

// Limits holds the maximum count allowed per color. The zero value has no
// colors; use DefaultLimits.
type Limits struct {
	max map[string]int
}

// DefaultLimits returns the fixed limits: 12 red, 13 green, 14 blue.
func DefaultLimits() Limits {
	return Limits{max: map[string]int{
		Red:   12,
		Green: 13,
		Blue:  14,
	}}
}

// Max returns the limit for color and whether the color is known.
func (l Limits) Max(color string) (int, bool) {
	n, ok := l.max[color]
	return n, ok
}

// Colors returns the known colors in sorted order.
func (l Limits) Colors() []string {
	colors := make([]string, 0, len(l.max))
	for c := range l.max {
		colors = append(colors, c)
	}
	sort.Strings(colors)
	return colors
}

// Feasible reports whether every observation in g stays within its color's
// limit. The scan stops at the first observation over its limit, so colors
// after it are never looked up. A color without a limit is an error.
func (l Limits) Feasible(g *Game) (bool, error) {
	for _, obs := range g.Observations {
		limit, ok := l.max[obs.Color]
		if !ok {
			return false, unknownColor(g.ID, obs.Color)
		}
		if obs.Count > limit {
			return false, nil
		}
	}
	return true, nil
}

// Power returns the product of the largest count seen for each limited color.
// A color that never appears contributes zero. Every observation is checked,
// and a color without a limit is an error.
func (l Limits) Power(g *Game) (int, error) {
	maxSeen := make(map[string]int, len(l.max))
	for _, obs := range g.Observations {
		if _, ok := l.max[obs.Color]; !ok {
			return 0, unknownColor(g.ID, obs.Color)
		}
		if obs.Count > maxSeen[obs.Color] {
			maxSeen[obs.Color] = obs.Count
		}
	}

	power := 1
	for c := range l.max {
		power *= maxSeen[c]
	}
	return power, nil
}

func unknownColor(line int, color string) error {
	return &Error{
		Op:   "check",
		Kind: KindUnknownColor,
		Line: line,
		Err:  fmt.Errorf("%w: %q", ErrUnknownColor, color),
	}
}
