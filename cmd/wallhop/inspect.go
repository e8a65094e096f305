package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallhop/gridgraph"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <map-file>",
		Short: "Show open regions and the wall crossings a path needs",
		Long: `Split the map into regions of open cells, then count the fewest walls
any route from S to E must enter and predict the search outcome.

Examples:
  wallhop inspect maps/ring.txt
  cat maps/ring.txt | wallhop inspect -`,
		Args: cobra.ExactArgs(1),
		RunE: a.inspect,
	}
}

func (a *app) inspect(cmd *cobra.Command, args []string) error {
	g, err := readMap(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	walls := len(g.Find(gridgraph.Wall))
	fmt.Fprintf(out, "Grid %dx%d, %d walls\n", g.Size(), g.Size(), walls)

	// Regions, largest first.
	regions := g.OpenRegions()
	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	fmt.Fprintf(out, "Open regions: %d %v\n", len(regions), sizes)

	starts, ends := g.Find(gridgraph.Start), g.Find(gridgraph.End)
	if len(starts) != 1 || len(ends) != 1 {
		fmt.Fprintf(out, "Endpoints: %d start(s), %d end(s); need exactly one of each\n", len(starts), len(ends))
		return nil
	}
	start, end := starts[0], ends[0]

	need, route, err := g.MinWallCrossings(start, end)
	if err != nil {
		return err
	}
	a.logger.Debug("min wall crossings", "start", start, "end", end, "walls", need, "route", len(route))

	region := g.RegionOf(start)
	sameRegion := region >= 0 && region == g.RegionOf(end)
	fmt.Fprintf(out, "From %s to %s: same region %t, at least %d wall(s)\n", start, end, sameRegion, need)
	fmt.Fprintf(out, "Prediction: %s\n", predict(need))
	return nil
}

func predict(need int) string {
	switch need {
	case 0:
		return "succeeds without crossing a wall"
	case 1:
		return "needs one wall; fails if a route through another wall reaches a needed cell first"
	default:
		return fmt.Sprintf("fails, %d walls needed", need)
	}
}
