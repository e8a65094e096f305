// wallhop finds grid paths that may cross at most one wall.
//
// Usage:
//
//	wallhop solve [map-file]    - Run the search and print the outcome
//	wallhop inspect <map-file>  - Show open regions and wall crossings needed
//	wallhop version             - Print the build version
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.wallhop, ./configs, embedded)
//	--log-level <lvl>   - Override log.level (debug, info, warn, error)
//	--no-color          - Disable coloured output
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/wallhop/internal/config"
	"github.com/katalvlaran/wallhop/internal/render"
)

// version is overridden at build time with -ldflags "-X main.version=…".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once PersistentPreRunE ran.
type app struct {
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagNoColor  bool

	cfg      config.Config
	logger   *log.Logger
	renderer *render.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wallhop",
		Short: "A* pathfinding where a path may cross one wall",
		Long: `wallhop runs an A* search over a square grid. Walls are not obstacles:
a path may pass through at most one of them.

Maps are text files, one row per line:
  .  open cell      #  wall
  S  start          E  end

Examples:
  wallhop solve maps/ring.txt
  wallhop solve --rows 20 --start 0,0 --end 19,19 --compare
  wallhop inspect maps/ring.txt`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global persistent flags
	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.flagNoColor, "no-color", false, "Disable coloured output")

	// Add subcommands
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads the config and builds the logger and renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if a.flagLogLevel != "" {
		cfg.Log.Level = a.flagLogLevel
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "wallhop",
		Level:           lvl,
	})
	color := cfg.Render.Color && !a.flagNoColor && isTerminal(cmd.OutOrStdout())
	a.renderer = render.New(cfg.Render.Glyphs, color)
	a.logger.Debug("config loaded", "rows", cfg.Grid.Rows, "extent", cfg.Grid.Extent, "color", color)
	return nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		// The version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wallhop %s\n", version)
		},
	}
}
