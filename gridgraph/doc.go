// Package gridgraph models the square grid that wallhop searches over.
//
// What:
//
//   - Grid is an R×R arrangement of cells, each classified as Default,
//     Wall, Start or End.
//   - Neighbors enumerates the Moore neighbourhood (up to 8 cells) in a
//     fixed row-major offset order.
//   - Parse and String convert to and from a compact text form.
//   - OpenRegions groups non-wall cells into 8-connected regions.
//   - MinWallCrossings computes the fewest walls any route must enter
//     (0-1 BFS), which predicts whether a one-wall search can succeed.
//
// Text form:
//
//	. default    # wall    S start    E end
//
// Cell size:
//
//	Generate(rows, extent) derives CellSize() = extent / rows using integer
//	division. The remainder of extent is simply unused; this is a known
//	rounding artifact kept for compatibility with pixel layouts that were
//	built the same way.
//
// Complexity:
//
//   - Kind, SetKind, InBounds: O(1).
//   - Neighbors:               O(1) (at most 8 results).
//   - OpenRegions:             O(R²·8), Memory: O(R²).
//   - MinWallCrossings:        O(R²·8), Memory: O(R²).
//
// Errors:
//
//   - ErrEmptyGrid:   zero rows requested or parsed.
//   - ErrBadExtent:   negative extent.
//   - ErrNonSquare:   parsed rows do not form an R×R square.
//   - ErrBadGlyph:    unknown character in text form.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrNoPath:      no route between two cells.
//
// Uniqueness of Start and End is the editor's responsibility; the grid
// stores whatever it is told. Searches validate it before running.
package gridgraph
