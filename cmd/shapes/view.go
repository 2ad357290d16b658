package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapes/internal/catalog"
	"github.com/vovakirdan/tui-shapes/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [set]",
	Short: "View a shape set interactively",
	Long: `Draw every shape of the set and cycle through orientations.

Controls:
  R          - Advance every shape to its next orientation
  Q/Ctrl+C   - Quit

The terminal must be large enough for every table; the viewer exits with an
error otherwise.

Examples:
  shapes view
  shapes view tetrominoes
  shapes view --poll 50 pentominoes-a
  shapes view --sets ./my-sets custom`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func runView(_ *cobra.Command, args []string) {
	env := mustSetup()
	defer env.Close()

	set, err := env.resolveSet(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'shapes list' to see available sets.")
		os.Exit(1)
	}

	width, height := terminalSize()
	placements, err := catalog.Build(set, env.layout(width))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	env.logger.Debug("starting viewer", "set", set.ID, "width", width, "height", height)

	if err := tui.Run(placements, env.runtime(width, height)); err != nil {
		env.logger.Error("viewer stopped", "set", set.ID, "error", err)
		env.Close()
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
