package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shapes/internal/catalog"
	"github.com/vovakirdan/tui-shapes/internal/config"
	"github.com/vovakirdan/tui-shapes/internal/core"
)

// environment is the state every command starts from.
type environment struct {
	config  config.ViewerConfig
	logger  *log.Logger
	logFile io.Closer
}

// setup loads config, applies flag overrides and registers user sets.
func setup() (*environment, error) {
	env := &environment{}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := tea.LogToFile(flagLogFile, "shapes")
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		env.logFile = f
	}
	env.logger = newLogger(out, flagDebug)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		env.Close()
		return nil, err
	}
	if flagPoll != 0 {
		cfg.PollIntervalMS = flagPoll
		if err := cfg.Validate(); err != nil {
			env.Close()
			return nil, err
		}
	}
	env.config = cfg
	env.logger.Debug("config loaded", "source", cfg.Source, "poll", cfg.PollInterval())

	if flagSets != "" {
		if err := registerSets(flagSets, env.logger); err != nil {
			env.Close()
			return nil, err
		}
	}
	return env, nil
}

// mustSetup is setup for command handlers: errors end the process.
func mustSetup() *environment {
	env, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return env
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shapes",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// registerSets loads user sets from path and adds them to the catalog.
func registerSets(path string, logger *log.Logger) error {
	sets, err := catalog.NewLoader(path).LoadAll()
	if err != nil {
		return err
	}
	for _, s := range sets {
		if err := catalog.Add(s); err != nil {
			return err
		}
		logger.Debug("set loaded", "id", s.ID, "shapes", len(s.Shapes), "source", s.Source)
	}
	return nil
}

// Close releases the log file, if any.
func (e *environment) Close() {
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// resolveSet returns the set named by args, or the configured default.
func (e *environment) resolveSet(args []string) (catalog.Set, error) {
	id := e.config.DefaultSet
	if len(args) > 0 {
		id = args[0]
	}
	return catalog.Get(id)
}

// runtime builds the viewer settings for a screen of the given size.
func (e *environment) runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		PollInterval: e.config.PollInterval(),
		Filled:       e.config.FilledGlyph(),
		Empty:        e.config.EmptyGlyph(),
	}
}

// layout places automatic shapes within width columns.
func (e *environment) layout(width int) catalog.Layout {
	return catalog.Layout{
		OriginRow: e.config.Layout.OriginRow,
		OriginCol: e.config.Layout.OriginCol,
		Gap:       e.config.Layout.Gap,
		MaxWidth:  width,
	}
}

// terminalSize returns the stdout size, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
