package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallhop/astar"
	"github.com/katalvlaran/wallhop/dijkstra"
)

type solveFlags struct {
	rows          int
	start, end    string
	compare       bool
	trace         bool
	quiet         bool
	timeout       time.Duration
	maxIterations int
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [map-file]",
		Short: "Run the one-wall search and print the outcome",
		Long: `Run the search on a map file ("-" reads stdin) or on an empty generated
grid. The map's S and E are used unless --start and --end are given.

Examples:
  wallhop solve maps/ring.txt
  wallhop solve maps/ring.txt --compare --trace --log-level debug
  wallhop solve --rows 30 --start 0,0 --end 29,29`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args, f)
		},
	}

	cmd.Flags().IntVar(&f.rows, "rows", 0, "Rows of a generated grid (default from config)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start cell as ROW,COL")
	cmd.Flags().StringVar(&f.end, "end", "", "End cell as ROW,COL")
	cmd.Flags().BoolVar(&f.compare, "compare", false, "Also print Dijkstra costs through and around walls")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Log every display transition at debug level")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not draw the grid")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Cancel the search after this long (default from config)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "Cancel after this many iterations (default from config)")
	return cmd
}

func (a *app) solve(cmd *cobra.Command, args []string, f *solveFlags) error {
	rows := a.cfg.Grid.Rows
	if f.rows > 0 {
		rows = f.rows
	}
	sc, err := loadScenario(args, cmd.InOrStdin(), rows, a.cfg.Grid.Extent, f.start, f.end)
	if err != nil {
		return err
	}

	// 1) Options: recorder, logger, bounds.
	rec := &astar.Recorder{}
	var obs astar.Observer = rec
	if f.trace {
		obs = astar.ObserverFuncs{
			OnTransition: func(ev astar.Event) {
				rec.Transition(ev)
				a.logger.Debug("transition", "cell", ev.Cell, "state", ev.State, "iteration", ev.Iteration)
			},
			OnStep: rec.Step,
		}
	}
	opts := []astar.Option{astar.WithObserver(obs), astar.WithLogger(a.logger)}
	if sc.explicit {
		opts = append(opts, astar.WithEndpoints(sc.start, sc.end))
	}
	limit := a.cfg.Search.MaxIterations
	if f.maxIterations > 0 {
		limit = f.maxIterations
	}
	if limit > 0 {
		opts = append(opts, astar.WithMaxIterations(limit))
	}

	// 2) Context with optional deadline.
	ctx := cmd.Context()
	timeout := a.cfg.Search.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// 3) Search.
	s, err := astar.New(sc.grid, opts...)
	if err != nil {
		return err
	}
	began := time.Now()
	res, err := s.Run(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("search finished",
		"status", res.Status, "expanded", res.Expanded, "elapsed", time.Since(began))

	// 4) Report.
	out := cmd.OutOrStdout()
	if !f.quiet {
		fmt.Fprintln(out, a.renderer.Grid(sc.display(), rec.State))
		fmt.Fprintln(out, a.renderer.Legend())
		fmt.Fprintln(out)
	}
	printResult(out, s, res)

	if f.compare {
		return a.compare(out, sc, s)
	}
	return nil
}

func printResult(out io.Writer, s *astar.Search, res astar.Result) {
	fmt.Fprintf(out, "From %s to %s: %s\n", s.Start(), s.End(), res.Status)
	if res.Found() {
		fmt.Fprintf(out, "  cost:          %.3f\n", res.Cost)
		fmt.Fprintf(out, "  walls crossed: %d\n", res.WallsCrossed)
		fmt.Fprintf(out, "  steps:         %d\n", len(res.Path)-1)
	}
	fmt.Fprintf(out, "  expanded:      %d\n", res.Expanded)
	fmt.Fprintf(out, "  iterations:    %d\n", res.Iterations)
}

// compare prints the unconstrained and walls-impassable optimum costs.
func (a *app) compare(out io.Writer, sc scenario, s *astar.Search) error {
	free, err := dijkstra.Dijkstra(sc.grid, dijkstra.Source(s.Start()))
	if err != nil {
		return err
	}
	around, err := dijkstra.Dijkstra(sc.grid, dijkstra.Source(s.Start()), dijkstra.WithWallsImpassable())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Reference costs:")
	fmt.Fprintf(out, "  through any walls: %s\n", formatCost(free.To(s.End())))
	fmt.Fprintf(out, "  around all walls:  %s\n", formatCost(around.To(s.End())))
	return nil
}

func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return "unreachable"
	}
	return fmt.Sprintf("%.3f", v)
}
