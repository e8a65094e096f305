// Package render draws a grid and the display states of a search as text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wallhop/astar"
	"github.com/katalvlaran/wallhop/gridgraph"
	"github.com/katalvlaran/wallhop/internal/config"
)

// Element is what a single rendered cell shows.
type Element int

const (
	ElemDefault Element = iota
	ElemWall
	ElemStart
	ElemEnd
	ElemOpen
	ElemClosed
	ElemPath
)

// elementStyles maps each element to its lipgloss style.
var elementStyles = map[Element]lipgloss.Style{
	ElemDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ElemWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	ElemStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	ElemEnd:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	ElemOpen:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ElemClosed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ElemPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
}

// StateFunc reports the latest display state of a cell, if any.
// (*astar.Recorder).State satisfies it.
type StateFunc func(gridgraph.Coord) (astar.DisplayState, bool)

// Renderer turns grids into glyph text, optionally coloured.
type Renderer struct {
	glyphs map[Element]string
	color  bool
}

// New returns a Renderer using glyphs. With color false the output has
// no escape sequences.
func New(glyphs config.Glyphs, color bool) *Renderer {
	return &Renderer{
		glyphs: map[Element]string{
			ElemDefault: glyphs.Default,
			ElemWall:    glyphs.Wall,
			ElemStart:   glyphs.Start,
			ElemEnd:     glyphs.End,
			ElemOpen:    glyphs.Open,
			ElemClosed:  glyphs.Closed,
			ElemPath:    glyphs.Path,
		},
		color: color,
	}
}

// ElementAt resolves what c shows. Start and End always show as
// themselves; Path overrides Wall and Default; Open and Closed only ever
// apply to Default cells.
func ElementAt(g *gridgraph.Grid, c gridgraph.Coord, state StateFunc) Element {
	kind := g.Kind(c)
	switch kind {
	case gridgraph.Start:
		return ElemStart
	case gridgraph.End:
		return ElemEnd
	}

	if state != nil {
		if st, ok := state(c); ok {
			switch {
			case st == astar.Path:
				return ElemPath
			case kind == gridgraph.Wall:
			case st == astar.Open:
				return ElemOpen
			case st == astar.Closed:
				return ElemClosed
			}
		}
	}
	if kind == gridgraph.Wall {
		return ElemWall
	}
	return ElemDefault
}

// Grid renders g one row per line, without a trailing newline. state may
// be nil to draw classifications only.
func (r *Renderer) Grid(g *gridgraph.Grid, state StateFunc) string {
	n := g.Size()
	var sb strings.Builder
	sb.Grow(n*n*2 + n)

	for row := 0; row < n; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same element
		col := 0
		for col < n {
			elem := ElementAt(g, gridgraph.Coord{Row: row, Col: col}, state)
			var run strings.Builder
			for col < n {
				if ElementAt(g, gridgraph.Coord{Row: row, Col: col}, state) != elem {
					break
				}
				run.WriteString(r.glyphs[elem])
				col++
			}
			sb.WriteString(r.paint(elem, run.String()))
		}
	}
	return sb.String()
}

// Legend lists every glyph with its meaning on one line.
func (r *Renderer) Legend() string {
	entries := []struct {
		elem Element
		name string
	}{
		{ElemStart, "start"}, {ElemEnd, "end"}, {ElemWall, "wall"},
		{ElemOpen, "open"}, {ElemClosed, "closed"}, {ElemPath, "path"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, r.paint(e.elem, r.glyphs[e.elem])+" "+e.name)
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) paint(elem Element, s string) string {
	if !r.color {
		return s
	}
	return elementStyles[elem].Render(s)
}
