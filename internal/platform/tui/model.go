package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shapes/internal/catalog"
	"github.com/vovakirdan/tui-shapes/internal/core"
	"github.com/vovakirdan/tui-shapes/internal/render"
	"github.com/vovakirdan/tui-shapes/internal/shape"
)

const (
	// HeaderRows is the number of screen rows used by the size header.
	HeaderRows = 2
	// headerValueCol is where the width and height values start.
	headerValueCol = 16
	// footerRows is reserved below the screen buffer for the help line.
	footerRows = 1
)

// Model is the Bubble Tea model for the shape viewer.
type Model struct {
	placements []catalog.Placement
	screen     *core.Screen
	table      *render.Table
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	err        error
	quitting   bool
}

// NewModel creates a viewer for the given placements and draws the first
// frame. A drawing error is kept on the model; Init then quits at once.
func NewModel(placements []catalog.Placement, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows)
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		placements: placements,
		screen:     screen,
		table:      render.NewTable(screen, cfg.Filled, cfg.Empty),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.err = m.redraw()
	return m
}

// Err returns the drawing error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.PollInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records actions for the next tick. Quit is handled immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize updates the reported size. Shapes keep their origins and the
// screen buffer only grows, so a window shrunk below the layout clips the
// view instead of ending the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(
		core.Max(m.screen.Width(), msg.Width),
		core.Max(m.screen.Height(), msg.Height-footerRows),
	)
	m.help.Width = msg.Width

	if err := m.redraw(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// handleTick consumes the input frame. Every shape advances at most once per
// tick, all in lock-step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	rotate := m.inputFrame.Has(core.ActionRotate)
	m.inputFrame.Clear()

	if rotate {
		for _, p := range m.placements {
			p.Shape.Advance()
		}
		if err := m.redraw(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.PollInterval)
}

// redraw repaints the header and every table into the screen buffer.
func (m Model) redraw() error {
	m.screen.Clear()
	m.drawHeader()

	for i, p := range m.placements {
		if err := m.table.Draw(p.Shape.Current(), p.Row, p.Col); err != nil {
			return fmt.Errorf("tui: drawing %q: %w", p.Shape.Name(), err)
		}
		m.drawCaption(i)
	}
	return nil
}

func (m Model) drawHeader() {
	m.screen.DrawText(0, 0, "window width :")
	m.screen.DrawText(headerValueCol, 0, fmt.Sprint(m.config.ScreenW))
	m.screen.DrawText(0, 1, "window height:")
	m.screen.DrawText(headerValueCol, 1, fmt.Sprint(m.config.ScreenH))
}

// drawCaption writes "glyph name index/count" under table i. The caption may
// run past the table up to one column before the next table or caption on
// its row. When that is too narrow the glyph is dropped, then the name is cut.
func (m Model) drawCaption(i int) {
	p := m.placements[i]
	_, h := render.TableSize(p.Shape.Current().Size())
	m.screen.DrawText(p.Col, p.Row+h, caption(p.Shape, m.captionWidth(i)))
}

// captionWidth returns the columns free for placement i's caption.
func (m Model) captionWidth(i int) int {
	p := m.placements[i]
	_, h := render.TableSize(p.Shape.Current().Size())
	y := p.Row + h
	width := m.screen.Width() - p.Col

	for j, o := range m.placements {
		if j == i || o.Col <= p.Col {
			continue
		}
		_, oh := render.TableSize(o.Shape.Current().Size())
		if y >= o.Row && y <= o.Row+oh {
			width = core.Min(width, o.Col-p.Col-1)
		}
	}
	return width
}

// caption formats a shape's caption to fit in width runes.
func caption(s *shape.Shape, width int) string {
	index := fmt.Sprintf("%d/%d", s.Index()+1, s.Len())
	full := fmt.Sprintf("%c %s %s", s.Glyph(), s.Name(), index)
	if utf8.RuneCountInString(full) <= width {
		return full
	}

	name := []rune(s.Name())
	if room := width - len(index) - 1; room > 0 {
		if len(name) > room {
			name = name[:room]
		}
		return string(name) + " " + index
	}

	runes := []rune(index)
	if width < len(runes) {
		runes = runes[:core.Max(width, 0)]
	}
	return string(runes)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, HeaderRows) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the viewer in the alternate screen and blocks until it exits.
// It returns the drawing error that stopped the viewer, if any.
func Run(placements []catalog.Placement, cfg core.RuntimeConfig) error {
	model := NewModel(placements, cfg)
	if model.err != nil {
		return model.err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
