package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallhop/astar"
	"github.com/katalvlaran/wallhop/gridgraph"
)

const wallColumn = `
S.#..
..#..
..#..
..#..
....E
`

const doubleWall = `
S.##.
..##.
..##.
..##.
..##E
`

// run executes the CLI with an isolated HOME and working directory.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out, errb bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(stdin))
	err = root.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

// gridPart returns the first n output lines with open and closed marks
// replaced by the default glyph.
func gridPart(out string, n int) string {
	lines := strings.SplitN(out, "\n", n+1)
	return strings.NewReplacer("o", ".", "x", ".").Replace(strings.Join(lines[:n], "\n"))
}

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wallhop dev\n", out)
}

func TestSolve_MapFile(t *testing.T) {
	out, _, err := run(t, "", "solve", writeMap(t, wallColumn), "--compare")
	require.NoError(t, err)

	assert.Equal(t, "S.#..\n.*#..\n..*..\n..#*.\n....E", gridPart(out, 5))
	assert.Contains(t, out, "o open")
	assert.Contains(t, out, "From (0,0) to (4,4): succeeded")
	assert.Contains(t, out, "cost:          5.657")
	assert.Contains(t, out, "walls crossed: 1")
	assert.Contains(t, out, "steps:         4")
	assert.Contains(t, out, "through any walls: 5.657")
	assert.Contains(t, out, "around all walls:  6.828")
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, doubleWall, "solve", "-", "-q", "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "From (0,0) to (4,4): failed")
	assert.NotContains(t, out, "cost:")
	assert.Contains(t, out, "around all walls:  unreachable")
}

func TestSolve_Generated(t *testing.T) {
	out, _, err := run(t, "", "solve", "--rows", "5", "--start", "0,0", "--end", "4, 4")
	require.NoError(t, err)
	assert.Equal(t, "S....\n.*...\n..*..\n...*.\n....E", gridPart(out, 5))
	assert.Contains(t, out, "cost:          5.657")
	assert.Contains(t, out, "walls crossed: 0")

	_, _, err = run(t, "", "solve", "--rows", "5")
	assert.ErrorIs(t, err, errNeedEndpoints)

	_, _, err = run(t, "", "solve", "--rows", "5", "--start", "0,0")
	assert.ErrorIs(t, err, errBadCoord)
}

func TestSolve_ExplicitEndpointsOnMap(t *testing.T) {
	out, _, err := run(t, "", "solve", writeMap(t, wallColumn), "--start", "0,4", "--end", "4,4")
	require.NoError(t, err)
	assert.Contains(t, out, "From (0,4) to (4,4): succeeded")
	assert.Equal(t, "..#.S\n..#.*\n..#.*\n..#.*\n....E", gridPart(out, 5), "old S is cleared, new S drawn")

	_, _, err = run(t, "", "solve", writeMap(t, wallColumn), "--start", "0,2", "--end", "4,4")
	assert.ErrorIs(t, err, astar.ErrEndpointIsWall)
}

func TestSolve_Bounds(t *testing.T) {
	out, _, err := run(t, "", "solve", writeMap(t, wallColumn), "-q", "--max-iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, out, ": cancelled")
	assert.Contains(t, out, "iterations:    1")
}

func TestSolve_TraceLogging(t *testing.T) {
	_, errOut, err := run(t, "", "solve", writeMap(t, wallColumn), "-q", "--trace", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "transition")
	assert.Contains(t, errOut, "search finished")

	_, errOut, err = run(t, "", "solve", writeMap(t, wallColumn), "-q", "--trace", "--log-level", "warn")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestSolve_BadInput(t *testing.T) {
	_, _, err := run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "S.\n.X\n", "solve", "-")
	assert.ErrorIs(t, err, gridgraph.ErrBadGlyph)

	_, _, err = run(t, "", "solve", "--log-level", "loud", writeMap(t, wallColumn))
	assert.Error(t, err)

	_, _, err = run(t, "", "solve", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "", "inspect", writeMap(t, wallColumn))
	require.NoError(t, err)
	assert.Contains(t, out, "Grid 5x5, 4 walls")
	assert.Contains(t, out, "Open regions: 1 [21]")
	assert.Contains(t, out, "same region true, at least 0 wall(s)")
	assert.Contains(t, out, "succeeds without crossing a wall")

	out, _, err = run(t, doubleWall, "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Open regions: 2 [10 5]")
	assert.Contains(t, out, "same region false, at least 2 wall(s)")
	assert.Contains(t, out, "fails, 2 walls needed")

	out, _, err = run(t, "...\n.#.\n...\n", "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "need exactly one of each")
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord("3,7")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Coord{Row: 3, Col: 7}, c)

	c, err = parseCoord(" 1 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Coord{Row: 1, Col: 2}, c)

	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		_, err := parseCoord(bad)
		assert.ErrorIs(t, err, errBadCoord, bad)
	}
}

func TestPredict(t *testing.T) {
	assert.Contains(t, predict(0), "succeeds")
	assert.Contains(t, predict(1), "one wall")
	assert.Contains(t, predict(1), "reaches a needed cell first")
	assert.Equal(t, "fails, 3 walls needed", predict(3))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the rest of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if filepath.IsAbs(dir) {
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
