package parser

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/ccollicutt/cubecheck/pkg/game"
)

// Load reads the whole input file into memory.
func Load(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path is expected
	if err != nil {
		return "", &game.Error{Op: "load", Kind: game.KindIO, Path: path, Err: err}
	}
	return string(data), nil
}

// LineSource implements Source over text already held in memory.
//
// It splits on '\n' and ends at the first empty line, even if more
// non-empty lines follow it. Lines after the blank are never produced.
type LineSource struct {
	lines []string
	next  int
	done  bool
}

// NewLineSource creates a Source over text.
func NewLineSource(text string) *LineSource {
	return &LineSource{lines: strings.Split(text, "\n")}
}

// Next returns the next line.
// Returns io.EOF at the first empty line or when the text is exhausted.
func (s *LineSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done || s.next >= len(s.lines) {
		s.done = true
		return nil, io.EOF
	}

	raw := s.lines[s.next]
	if raw == "" {
		s.done = true
		return nil, io.EOF
	}

	s.next++
	return &Line{Raw: raw, Number: s.next}, nil
}

// Lines drains the remaining lines.
func (s *LineSource) Lines(ctx context.Context) ([]*Line, error) {
	var out []*Line
	for {
		line, err := s.Next(ctx)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
}

// Reset rewinds the source to the first line.
func (s *LineSource) Reset() {
	s.next = 0
	s.done = false
}
