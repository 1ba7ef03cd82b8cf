package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

// Rows reserved above (HUD) and below (key help) the play area.
const (
	hudRows  = 1
	helpRows = 1
)

// Options configures a terminal game session.
type Options struct {
	Runtime core.RuntimeConfig // Width and Height are derived from Cols/Rows
	Cols    int
	Rows    int
	Logger  *log.Logger    // nil discards logs
	Store   *storage.Store // nil skips run history
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game   registry.Game
	screen *core.Screen
	canvas *core.CellCanvas
	config core.RuntimeConfig
	clock  *core.FrameClock
	input  *core.InputState
	keys   GameKeyMap
	help   help.Model
	logger *log.Logger
	store  *storage.Store
	state  core.GameState

	quitting bool
	back     bool
}

// Result reports how a terminal session ended.
type Result struct {
	Back bool // Player asked to return to the menu
}

// NewModel creates a new Bubble Tea model for the given game.
// The game receives the play area between the HUD and the help footer.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 || rows <= hudRows+helpRows {
		cols, rows = 80, 25
	}
	screen := core.NewScreen(cols, rows-helpRows)
	canvas := core.NewCellCanvas(screen, hudRows)
	cfg.Width, cfg.Height = canvas.Size()

	return Model{
		game:   game,
		screen: screen,
		canvas: canvas,
		config: cfg,
		clock:  core.NewFrameClock(),
		input:  core.NewInputState(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		logger: logger.With("game", game.ID()),
		store:  opts.Store,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "width", m.config.Width, "height", m.config.Height)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Key releases are never reported, so drop everything on focus loss
		m.input.ReleaseAll()
		return m, nil

	case tea.FocusMsg:
		m.clock.Reset()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Apply(msg, m.input) {
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.logger.Info("back to menu", "score", m.state.Score)
		m.back = true
		return m, tea.Quit
	case core.ActionNone:
		if key.Matches(msg, m.keys.Screenshot) {
			m.saveScreenshot()
		}
	}
	return m, nil
}

// handleResize processes window resize events. The run continues; the game
// clamps its entities to the new play area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= hudRows+helpRows {
		return m, nil
	}

	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.config.Width, m.config.Height = m.canvas.Size()
	m.game.Resize(m.config.Width, m.config.Height)
	m.help.Width = msg.Width

	m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	result := m.game.Step(m.input, dt)
	m.input.Advance(dt)

	if result.State.Paused != m.state.Paused {
		m.logger.Info("pause", "paused", result.State.Paused)
	}
	m.state = result.State

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs step events and records finished runs.
func (m *Model) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventGameOver:
		duration := time.Duration(ev.Elapsed * float64(time.Second)).Round(time.Millisecond)
		m.logger.Info("game over", "score", ev.Score, "duration", duration, "wave", ev.Wave)
		if m.store != nil {
			m.store.SaveRun(storage.RunEntry{
				GameID:   m.game.ID(),
				Score:    ev.Score,
				Wave:     ev.Wave,
				Duration: duration,
			})
		}
	case core.EventReset:
		m.logger.Info("reset")
	case core.EventWaveCleared:
		m.logger.Info("wave cleared", "wave", ev.Wave, "score", ev.Score)
	}
}

// render draws the game and HUD into the screen buffer.
func (m Model) render() {
	m.game.Draw(m.canvas)
	DrawHUD(m.screen, m.game.Title(), m.game.State())
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one game session.
func Run(game registry.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Release held keys on blur
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	if fm, ok := final.(Model); ok {
		return Result{Back: fm.back}, nil
	}
	return Result{}, nil
}
