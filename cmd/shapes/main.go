// shapes is a terminal viewer that cycles shapes through their rotations
// and reflections.
//
// Usage:
//
//	shapes [set]            - View a shape set (default: demo)
//	shapes view [set]       - Same as above
//	shapes list             - List available shape sets
//	shapes show <set>       - Print every orientation of every shape
//	shapes serve            - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>   - Viewer config YAML
//	--sets <path>     - Directory or file with extra shape sets
//	--poll <ms>       - Override the poll interval
//	--log-file <path> - Write logs to a file
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSets    string
	flagPoll    int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapes [set]",
	Short: "Shapes - Watch shapes rotate and flip in your terminal",
	Long: `Shapes draws each shape of a set as a grid and steps every shape
through its distinct rotations and reflections.

Available commands:
  view     - Interactive viewer (default)
  list     - Show all available shape sets
  show     - Print every orientation of a set
  serve    - Start SSH server for remote viewing

Examples:
  shapes
  shapes tetrominoes
  shapes list
  shapes show pentominoes-b
  shapes serve --ssh :2222`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to viewer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSets, "sets", "", "Directory or file with extra shape sets")
	rootCmd.PersistentFlags().IntVar(&flagPoll, "poll", 0, "Poll interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}
