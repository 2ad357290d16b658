package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapes/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available shape sets",
	Long:  `Shows built-in shape sets and any loaded with --sets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	env := mustSetup()
	defer env.Close()

	sets := catalog.List()
	if len(sets) == 0 {
		fmt.Println("No shape sets available.")
		return
	}

	fmt.Println("Available shape sets:")
	fmt.Println()
	fmt.Println(setTable(sets))
	fmt.Println()
	fmt.Println("Run 'shapes view <id>' to view a set.")
}

// setTable formats set infos as a bordered table.
func setTable(sets []catalog.SetInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "SHAPES", "SOURCE")
	for _, s := range sets {
		t.Row(s.ID, s.Title, strconv.Itoa(s.Count), s.Source)
	}
	return t.String()
}
