package gridgraph

import (
	"fmt"
	"strings"
)

// Glyphs used by Parse and String.
const (
	GlyphDefault = '.'
	GlyphWall    = '#'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
)

// Glyph returns the text-form character for k.
func (k Kind) Glyph() rune {
	switch k {
	case Wall:
		return GlyphWall
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	default:
		return GlyphDefault
	}
}

func kindOf(r rune) (Kind, bool) {
	switch r {
	case GlyphDefault:
		return Default, true
	case GlyphWall:
		return Wall, true
	case GlyphStart:
		return Start, true
	case GlyphEnd:
		return End, true
	}
	return Default, false
}

// Parse builds a grid from its text form: one line per row, one glyph per
// column. Blank lines and surrounding whitespace are ignored. The result
// has a cell size of 1.
//
// Returns ErrEmptyGrid for empty input, ErrNonSquare if any row length
// differs from the row count, ErrBadGlyph for unknown characters.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	g, err := Generate(len(rows), len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(runes), g.size)
		}
		for c, ch := range runes {
			k, ok := kindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, r, c)
			}
			g.kinds[r*g.size+c] = k
		}
	}

	return g, nil
}

// String renders g in text form, rows separated by newlines, with a
// trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.kinds) + g.size)
	for i, k := range g.kinds {
		b.WriteRune(k.Glyph())
		if (i+1)%g.size == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
