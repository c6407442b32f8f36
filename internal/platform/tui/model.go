package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stomp/internal/core"
	"github.com/vovakirdan/tui-stomp/internal/game"
	"github.com/vovakirdan/tui-stomp/internal/platform"
)

// Options configures the terminal frontend.
type Options struct {
	Width           int           // Terminal width in cells
	Height          int           // Terminal height in cells, including the help line
	TickRate        int           // Frames per second
	KeyReleaseAfter time.Duration // Hold window for emulated key releases
	Logger          *log.Logger
}

// Model is the Bubble Tea model running the stomp loop.
//
// Terminals report key presses (and auto-repeats) but no releases, so a
// horizontal key counts as held until no repeat has arrived for
// KeyReleaseAfter, or until the stop key is pressed.
type Model struct {
	loop    *game.Loop
	surface *ScreenSurface
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	tickRate     int
	releaseAfter time.Duration

	held     core.Key  // horizontal key currently held, "" if none
	heldAt   time.Time // tick time of the last press or repeat of held
	repeated bool      // held was pressed since the last tick
	quitting bool
}

// NewModel creates a model driving loop, whose world was built for cfg.
func NewModel(loop *game.Loop, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Width, max(opts.Height-1, 1))

	return Model{
		loop:         loop,
		surface:      NewScreenSurface(screen, cfg),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		logger:       logger,
		tickRate:     opts.TickRate,
		releaseAfter: opts.KeyReleaseAfter,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.surface.Screen().Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Stop()
		m.logger.Info("quit requested", "frame", m.loop.Frame())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stop):
		m.release()
		return m, nil
	}

	k, ok := m.keys.Translate(msg)
	if !ok {
		return m, nil
	}

	if k.IsHorizontal() {
		if m.held != k {
			m.loop.KeyDown(k)
		}
		m.held = k
		m.repeated = true
		return m, nil
	}

	m.loop.KeyDown(k)
	return m, nil
}

// release emits the key-up for the held direction, if any.
func (m *Model) release() {
	if m.held == "" {
		return
	}
	m.loop.KeyUp(m.held)
	m.held = ""
	m.repeated = false
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.loop.Stopped() {
		return m, tea.Quit
	}

	if m.repeated {
		m.heldAt = now
		m.repeated = false
	} else if m.held != "" && now.Sub(m.heldAt) > m.releaseAfter {
		m.release()
	}

	res := m.loop.Tick(now, m.surface)
	platform.LogStep(m.logger, res)

	return m, tickCmd(m.tickRate)
}

// View renders the last drawn frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.surface.Screen()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(loop *game.Loop, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(loop, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
