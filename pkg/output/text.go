package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/cubecheck/pkg/analyzer"
)

// TextFormatter formats reports as console lines: one line per game, then the total.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if !f.opts.Quiet {
		for _, g := range report.Games {
			if _, err := fmt.Fprintln(w, formatGame(report.Mode, g)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, report.Total)
	return err
}

func formatGame(mode analyzer.Mode, g Game) string {
	if mode == analyzer.ModeFeasible {
		return fmt.Sprintf("%d %s", g.ID, TokenList(g.Tokens))
	}
	return fmt.Sprintf("%d %d", g.ID, g.Value)
}

// TokenList renders tokens as a bracketed list of single-quoted strings,
// e.g. ['3', 'red']. A token holding a single quote and no double quote is
// wrapped in double quotes instead.
func TokenList(tokens []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteToken(tok))
	}
	b.WriteByte(']')
	return b.String()
}

func quoteToken(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == quote:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
