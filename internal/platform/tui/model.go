package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model running one snake game.
// Bubble Tea is the frame driver: every FrameMsg becomes one OnTick call.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tooSmall bool
	gameOver bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(0, cfg.ScreenH-helpRows)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.tooSmall = !m.fits()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code := m.keys.MapKey(msg)
	if code == core.KeyQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.game.OnKey(code)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(0, msg.Height-helpRows))
	m.help.Width = msg.Width

	wasSmall := m.tooSmall
	m.tooSmall = !m.fits()
	if m.tooSmall != wasSmall {
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height, "too_small", m.tooSmall)
	}
	return m, nil
}

// handleFrame runs one frame. The game is frozen while the terminal is too
// small to show the whole board.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.tooSmall {
		return m, frameCmd(m.config.FrameRate)
	}

	if m.game.OnTick(now) == snake.Terminated {
		m.gameOver = true
		return m, tea.Quit
	}

	return m, frameCmd(m.config.FrameRate)
}

func (m Model) fits() bool {
	needW, needH := RequiredSize(m.game.Grid())
	return m.config.ScreenW >= needW && m.config.ScreenH >= needH
}

// GameOver reports whether the program ended because the snake collided.
func (m Model) GameOver() bool {
	return m.gameOver
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.gameOver {
		return ""
	}

	if m.tooSmall {
		needW, needH := RequiredSize(m.game.Grid())
		DrawTooSmall(m.screen, needW, needH)
	} else {
		DrawGame(m.screen, m.game)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game and blocks until it ends.
// It reports whether the game ended by self-collision rather than by the
// player quitting.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.GameOver(), nil
	}
	return false, nil
}
