package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

const screenshotKey = "ctrl+s"

// GameOptions configures a GameModel.
type GameOptions struct {
	// Store receives a record for every finished run. May be nil.
	Store *storage.Store

	// Difficulty is stored with score records.
	Difficulty string

	// ReleaseAfter is how many quiet ticks end a held direction.
	// Zero keeps directions held.
	ReleaseAfter int

	// Renderer styles the screen. Nil uses the default renderer.
	Renderer *lipgloss.Renderer

	// Logger receives recorded runs and storage failures. Nil discards.
	Logger *log.Logger

	// ScreenshotDir receives ctrl+s captures; empty is
	// ~/.berzerk/screenshots.
	ScreenshotDir string

	// ExitOnBack quits the program on the back key. Otherwise the model
	// only flags BackToMenu for its parent.
	ExitOnBack bool
}

// GameModel drives one Game at its tick rate and turns key presses into
// input frames.
type GameModel struct {
	game     Game
	gen      uint64
	config   core.RuntimeConfig
	opts     GameOptions
	logger   *log.Logger
	screen   *core.Screen
	renderer *ScreenRenderer
	keys     *KeyMapper
	hold     *HoldTracker
	pending  core.InputFrame // actions collected since the last tick

	state      core.GameState // as of the last tick
	recorded   bool           // the finished run in state is stored
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps game. A zero seed is replaced by the current time.
func NewGameModel(game Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:     game,
		gen:      nextTickGen(),
		config:   cfg,
		opts:     opts,
		logger:   logger,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewScreenRenderer(opts.Renderer),
		keys:     NewKeyMapper(),
		hold:     NewHoldTracker(opts.ReleaseAfter),
	}
}

// Init starts a fresh run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the view follows the terminal; the arena keeps its size.
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		if msg.Gen == m.gen {
			return m.step()
		}
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == screenshotKey {
		m.screenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionBack:
		return m.back()
	case action == core.ActionRestart:
		m.hold.Reset()
	}

	m.hold.Press(action)
	m.pending.Set(action)
	return m, nil
}

// back leaves the game, but only from the pause or game-over screens.
func (m GameModel) back() (tea.Model, tea.Cmd) {
	if !m.state.GameOver && !m.state.Paused {
		return m, nil
	}
	m.backToMenu = true
	if m.opts.ExitOnBack {
		return m, tea.Quit
	}
	return m, nil
}

// step advances the simulation by one tick with the pending frame.
func (m GameModel) step() (tea.Model, tea.Cmd) {
	if m.hold.Tick() {
		m.pending.Set(core.ActionRelease)
	}
	m.state = m.game.Step(m.pending).State
	m.pending.Clear()

	if !m.state.GameOver {
		m.recorded = false
	} else if !m.recorded {
		m.record()
		m.recorded = true
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// record stores the finished run. Runs without points are skipped.
func (m GameModel) record() {
	if m.opts.Store == nil || m.state.Score == 0 {
		return
	}
	rec := storage.NewRecord(m.game.ID(), m.opts.Difficulty, m.state.Score, m.state.Level, m.state.Won)
	if _, err := m.opts.Store.SaveScore(rec); err != nil {
		m.logger.Warn("could not save score", "run", rec.RunID, "err", err)
		return
	}
	m.logger.Info("run recorded", "run", rec.RunID, "score", rec.Score, "level", rec.Level, "won", rec.Won)
}

// screenshot writes the current frame as text. Failures are logged and
// the game goes on.
func (m GameModel) screenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		var err error
		if dir, err = defaultScreenshotDir(); err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
	}
	m.game.Render(m.screen)
	path, err := writeScreenshot(dir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State is the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting reports that the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports that the user left the game for the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own program on the alternate screen until the
// user quits or backs out.
func Run(game Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.ExitOnBack = true
	_, err := tea.NewProgram(NewGameModel(game, cfg, opts), tea.WithAltScreen()).Run()
	return err
}
