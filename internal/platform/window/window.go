// Package window runs a game in a desktop or mobile window using ebiten.
// Unlike the terminal, ebiten reports real key releases and touches, so
// held actions follow the keys exactly.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/platform/touch"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

// hudHeight is the strip above the play area used for the status line.
const hudHeight = 20.0

// heldKeys maps held actions to keyboard keys.
var heldKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
}

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig // Width and Height are the play area in units
	Logger  *log.Logger        // nil discards logs
	Store   *storage.Store     // nil skips run history
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game   registry.Game
	config core.RuntimeConfig
	clock  *core.FrameClock
	input  *core.InputState
	pad    *touch.Pad
	logger *log.Logger
	store  *storage.Store

	touchIDs []ebiten.TouchID
	points   []touch.Point
	held     map[core.Action]bool // level last reported to input
	focused  bool
	paused   bool

	scale         float64 // device pixels per unit
	width, height float64 // window size in units
	pendingResize bool
}

// NewHost creates a host and resets the game.
func NewHost(game registry.Game, opts Options) *Host {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := core.DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &Host{
		game:    game,
		config:  cfg,
		clock:   core.NewFrameClock(),
		input:   core.NewInputState(),
		pad:     touch.NewPad(cfg.Width, cfg.Height+hudHeight),
		logger:  logger.With("game", game.ID(), "front", "window"),
		store:   opts.Store,
		held:    make(map[core.Action]bool),
		focused: true,
		scale:   1,
		width:   cfg.Width,
		height:  cfg.Height + hudHeight,
	}
	game.Reset(cfg)
	h.logger.Info("game started", "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height)
	return h
}

var _ ebiten.Game = (*Host)(nil)

// Update reads input and advances the game by one clamped frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.logger.Info("quit", "score", h.game.State().Score)
		return ebiten.Termination
	}

	if h.pendingResize {
		h.pendingResize = false
		h.pad.Resize(h.width, h.height)
		h.config.Width, h.config.Height = h.width, h.height-hudHeight
		h.game.Resize(h.config.Width, h.config.Height)
		h.logger.Debug("resize", "width", h.config.Width, "height", h.config.Height, "scale", h.scale)
	}

	if focused := ebiten.IsFocused(); focused != h.focused {
		h.focused = focused
		if !focused {
			h.input.ReleaseAll()
			clear(h.held)
		}
		h.clock.Reset()
	}

	dt := h.clock.Tick(time.Now())
	if h.focused {
		h.readInput()
	}

	result := h.game.Step(h.input, dt)
	h.input.Advance(dt)

	if result.State.Paused != h.paused {
		h.paused = result.State.Paused
		h.logger.Info("pause", "paused", h.paused)
	}
	for _, ev := range result.Events {
		h.handleEvent(ev)
	}
	return nil
}

// readInput merges keyboard, mouse and touch into the input state.
func (h *Host) readInput() {
	h.points = h.points[:0]
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		h.points = append(h.points, h.toUnits(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.points = append(h.points, h.toUnits(ebiten.CursorPosition()))
	}

	misses := h.pad.Update(h.points)
	h.pad.Apply(h.input)

	for _, hk := range heldKeys {
		down := false
		for _, k := range hk.keys {
			down = down || ebiten.IsKeyPressed(k)
		}
		switch hk.action {
		case core.ActionFire:
			// A pointer held anywhere off the pad fires; pad taps are timed
			down = down || len(misses) > 0
		default:
			down = down || h.pad.Down(hk.action)
		}

		// Report edges only so a timed pad hold survives idle keys
		if down == h.held[hk.action] {
			continue
		}
		h.held[hk.action] = down
		if down {
			h.input.Press(hk.action)
		} else {
			h.input.Release(hk.action)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.input.Trigger(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.input.Trigger(core.ActionRestart)
	}
}

// toUnits converts a device pixel position to world units.
func (h *Host) toUnits(x, y int) touch.Point {
	return touch.Point{X: float64(x) / h.scale, Y: float64(y) / h.scale}
}

func (h *Host) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventGameOver:
		duration := time.Duration(ev.Elapsed * float64(time.Second)).Round(time.Millisecond)
		h.logger.Info("game over", "score", ev.Score, "duration", duration, "wave", ev.Wave)
		if h.store != nil {
			h.store.SaveRun(storage.RunEntry{
				GameID:   h.game.ID(),
				Score:    ev.Score,
				Wave:     ev.Wave,
				Duration: duration,
			})
		}
	case core.EventReset:
		h.logger.Info("reset")
	case core.EventWaveCleared:
		h.logger.Info("wave cleared", "wave", ev.Wave, "score", ev.Score)
	}
}

// Draw paints the game, HUD and control pad.
func (h *Host) Draw(screen *ebiten.Image) {
	s := &surface{
		dst:   screen,
		scale: h.scale,
		top:   hudHeight,
		w:     h.config.Width,
		h:     h.config.Height,
	}
	h.game.Draw(s)
	h.drawHUD(screen)
	h.drawPad(screen)
}

func (h *Host) drawHUD(screen *ebiten.Image) {
	sc := float32(h.scale)
	vector.FillRect(screen, 0, 0, float32(h.width)*sc, hudHeight*sc, rgba(core.ColorPanel), false)

	st := h.game.State()
	line := fmt.Sprintf("%s  Score: %d  Lives: %d", h.game.Title(), st.Score, st.Lives)
	for _, m := range st.Meters {
		line += fmt.Sprintf("  %s: %s", m.Label, m.Value)
	}
	if st.Paused {
		line += "  PAUSED"
	}
	drawText(screen, line, 6, 3, h.scale, rgba(core.ColorBrightWhite))
}

func (h *Host) drawPad(screen *ebiten.Image) {
	sc := float32(h.scale)
	for _, b := range h.pad.Layout().Buttons {
		alpha := uint8(60)
		if h.pad.Down(b.Action) {
			alpha = 140
		}
		r := b.Rect
		vector.FillRect(screen, float32(r.X)*sc, float32(r.Y)*sc, float32(r.W)*sc, float32(r.H)*sc,
			withAlpha(rgba(core.ColorBrightWhite), alpha), true)

		tw := textWidth(b.Label)
		drawText(screen, b.Label, r.X+(r.W-tw)/2, r.Y+(r.H-lineHeight())/2, h.scale, rgba(core.ColorBrightWhite))
	}
}

// LayoutF sizes the screen in device pixels so drawing stays sharp on
// high-density displays.
func (h *Host) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	if outsideWidth != h.width || outsideHeight != h.height || scale != h.scale {
		h.width, h.height, h.scale = outsideWidth, max(outsideHeight, hudHeight+1), scale
		h.pendingResize = true
	}
	return outsideWidth * scale, outsideHeight * scale
}

// Layout implements ebiten.Game; LayoutF takes precedence.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := h.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(ht)
}

// Run opens a resizable window and plays the game until it is closed.
func Run(game registry.Game, opts Options) error {
	h := NewHost(game, opts)

	ebiten.SetWindowSize(int(h.width), int(h.height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: run %s: %w", game.ID(), err)
	}
	return nil
}
