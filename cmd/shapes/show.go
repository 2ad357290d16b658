package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapes/internal/catalog"
	"github.com/vovakirdan/tui-shapes/internal/core"
	"github.com/vovakirdan/tui-shapes/internal/render"
	"github.com/vovakirdan/tui-shapes/internal/shape"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

var showCmd = &cobra.Command{
	Use:   "show <set>",
	Short: "Print every orientation of a set",
	Long: `Print each shape of the set followed by all of its distinct
orientations, in the order the viewer cycles through them.

Examples:
  shapes show demo
  shapes show tetrominoes`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(_ *cobra.Command, args []string) {
	env := mustSetup()
	defer env.Close()

	set, err := env.resolveSet(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'shapes list' to see available sets.")
		os.Exit(1)
	}

	placements, err := catalog.Build(set, catalog.Layout{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	filled, empty := env.config.FilledGlyph(), env.config.EmptyGlyph()
	for _, p := range placements {
		out, err := orientationStrip(p.Shape, filled, empty, env.config.Layout.Gap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%c): %d orientations", p.Shape.Name(), p.Shape.Glyph(), p.Shape.Len())))
		fmt.Println(out)
		fmt.Println()
	}
}

// orientationStrip draws every orientation of s side by side, each table
// captioned with its position in the cycle.
func orientationStrip(s *shape.Shape, filled, empty rune, gap int) (string, error) {
	orientations := s.Orientations()
	w, h := render.TableSize(orientations[0].Size())

	screen := core.NewScreen(len(orientations)*(w+gap)-gap, h+catalog.CaptionRows)
	tbl := render.NewTable(screen, filled, empty)

	for i, g := range orientations {
		col := i * (w + gap)
		if err := tbl.Draw(g, 0, col); err != nil {
			return "", err
		}
		screen.DrawText(col, h, fmt.Sprintf("%d/%d", i+1, len(orientations)))
	}

	lines := strings.Split(screen.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n"), nil
}
