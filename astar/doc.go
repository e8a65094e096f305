// Package astar implements A* search over a gridgraph.Grid where a path
// may cross at most one Wall cell.
//
// Overview:
//
//   - Movement is 8-directional; a step costs its Euclidean length (1 or √2).
//   - The heuristic is the straight-line distance to End, which is
//     admissible and consistent for that step cost.
//   - Wall cells are not obstacles. A path may pass through one of them;
//     a path that has already done so never enters another.
//   - The search is incremental: every outer iteration is a yield point at
//     which an Observer is notified and the caller may cancel.
//
// Display states:
//
//	Open   – a non-wall cell entered the frontier.
//	Closed – a non-wall cell other than Start was expanded.
//	Path   – a cell other than Start lies on the final path.
//
// States are reported as Event values through Observer.Transition and are
// never written back to the grid. A cell's classification (Start, End,
// Wall, Default) is read-only for the whole run.
//
// Frontier ordering:
//
// Cells are popped by smallest fScore = gScore + h. Equal fScores are
// broken by discovery order: the cell that first joined the frontier
// earlier wins. An improved fScore re-keys a cell without changing its
// discovery order, and superseded heap records are discarded on pop
// (lazy decrease-key). A cell is always ordered by its current fScore,
// never by the score it had when it joined; an ordering that kept the
// joining score would pop improved cells late and is not reproduced.
// An expanded cell is never reopened. Runs on the same grid are therefore
// fully deterministic: same path, same event sequence.
//
// One-wall bookkeeping:
//
// Every cell keeps a single predecessor record, which carries whether the
// route to that cell has crossed a wall. Once a wall-using route reaches
// a cell first, cheaper or at equal cost, the cell holds the crossed flag
// and nothing extended from it may enter another wall. A one-wall search
// can therefore report Failed whenever a wall-using route claims a cell
// that every one-wall route needs. Strict "<" relaxation, where an
// equal-cost wall-free route never replaces an earlier one, is one way
// this happens; a strictly cheaper route through a wall is another.
// A grid with a wall-free route always succeeds, and a grid that needs
// two or more crossings always fails (see
// gridgraph.Grid.MinWallCrossings).
//
// Lifecycle:
//
//	Idle → Running → Succeeded | Failed | Cancelled
//
// A Search runs once. Run or Step on a terminal search returns
// ErrFinished; build a new Search to run again.
//
// Usage:
//
//	g, _ := gridgraph.Parse(text)
//	res, err := astar.Find(ctx, g,
//	    astar.WithObserver(rec),
//	    astar.WithMaxIterations(10_000),
//	)
//	if err != nil { … }
//	if res.Found() {
//	    // res.Path runs End … Start
//	}
//
// Complexity:
//
//   - Time:  O(R² log R²) for an R×R grid; each cell is expanded at most
//     once and every relaxation pushes at most one record.
//   - Space: O(R²) for scores, predecessors and the frontier.
//
// Errors:
//
//   - ErrNilGrid, ErrNoStart, ErrNoEnd, ErrMultipleStarts, ErrMultipleEnds:
//     returned by New when the grid does not describe exactly one search.
//   - ErrOutOfBounds, ErrStartIsEnd, ErrEndpointIsWall: invalid explicit
//     endpoints given with WithEndpoints.
//   - ErrFinished: Run or Step after a terminal status.
//   - ErrBadMaxIterations: panic from WithMaxIterations with n < 0.
//
// Failed and Cancelled are outcomes reported in Result.Status, not errors.
package astar
