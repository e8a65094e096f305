package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wallhop/gridgraph"
)

var (
	errBadCoord      = errors.New("wallhop: coordinate must be ROW,COL")
	errNeedEndpoints = errors.New("wallhop: a generated grid needs --start and --end")
)

// parseCoord reads "row,col".
func parseCoord(s string) (gridgraph.Coord, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	return gridgraph.Coord{Row: row, Col: col}, nil
}

// readMap parses a map file; "-" reads stdin.
func readMap(path string, stdin io.Reader) (*gridgraph.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	g, err := gridgraph.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return g, nil
}

// scenario is a grid plus optional explicit endpoints.
type scenario struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Coord
	explicit   bool
}

// loadScenario reads args[0] as a map, or generates an empty rows×rows
// grid. startFlag and endFlag, when set, override the map's S and E.
func loadScenario(args []string, stdin io.Reader, rows, extent int, startFlag, endFlag string) (scenario, error) {
	var sc scenario
	var err error

	if len(args) > 0 {
		sc.grid, err = readMap(args[0], stdin)
	} else {
		sc.grid, err = gridgraph.Generate(rows, extent)
	}
	if err != nil {
		return sc, err
	}

	if startFlag == "" && endFlag == "" {
		if len(args) == 0 {
			return sc, errNeedEndpoints
		}
		return sc, nil
	}
	if startFlag == "" || endFlag == "" {
		return sc, fmt.Errorf("%w: both --start and --end are required together", errBadCoord)
	}
	if sc.start, err = parseCoord(startFlag); err != nil {
		return sc, err
	}
	if sc.end, err = parseCoord(endFlag); err != nil {
		return sc, err
	}
	sc.explicit = true
	return sc, nil
}

// display returns the grid to draw: with explicit endpoints, a copy whose
// S and E are moved onto them. Call it only after the endpoints were
// validated.
func (sc scenario) display() *gridgraph.Grid {
	if !sc.explicit {
		return sc.grid
	}
	g := sc.grid.Clone()
	for _, k := range []gridgraph.Kind{gridgraph.Start, gridgraph.End} {
		for _, c := range g.Find(k) {
			_ = g.SetKind(c, gridgraph.Default)
		}
	}
	_ = g.SetKind(sc.start, gridgraph.Start)
	_ = g.SetKind(sc.end, gridgraph.End)
	return g
}
