package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Setup      GameSetup
	Store      *storage.Store
	Difficulty string             // preselected in the menu
	Out        io.Writer          // bell cue target
	Renderer   *lipgloss.Renderer // nil uses the default renderer
	Logger     *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. Used for local play and for
// every SSH connection.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	game       *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Setup.Logger == nil {
		opts.Setup.Logger = opts.Logger
	}

	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg, opts.Difficulty, opts.Renderer),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuScores:
		m.menu = m.menu.WithNotice("")
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, m.opts.Renderer)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case MenuPlay:
		return m.startGame()
	}

	return m, cmd
}

// startGame builds a game for the selected difficulty. Setup errors, such
// as an invalid config file, are shown in the menu.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	launch, err := m.opts.Setup.Build(m.menu.Difficulty(), m.opts.Out)
	if err != nil {
		m.opts.Logger.Error("cannot start game", "err", err)
		m.menu = m.menu.WithNotice(err.Error())
		return m, nil
	}
	m.menu = m.menu.WithNotice("")

	gm := NewGameModel(launch.Game, m.config, GameOptions{
		Store:        m.opts.Store,
		Difficulty:   launch.Difficulty(),
		ReleaseAfter: launch.Config.Controls.ReleaseAfterTicks,
		Renderer:     m.opts.Renderer,
		Logger:       m.opts.Logger,
	})
	m.game = &gm
	m.screen = screenGame
	m.opts.Logger.Debug("game started", "difficulty", launch.Difficulty())

	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.showMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.showMenu()
	}

	return m, cmd
}

// showMenu returns to the title screen. The menu missed resizes while
// hidden, so it is brought up to date first.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	newMenu, _ := m.menu.Update(tea.WindowSizeMsg{Width: m.config.ScreenW, Height: m.config.ScreenH})
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	return m, nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.screen == screenGame
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
