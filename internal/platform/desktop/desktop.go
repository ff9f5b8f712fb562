// Package desktop runs Berzerk in a window. Unlike terminals, the window
// reports real key releases, so held directions need no emulation.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/cue"
	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

// Options configures a desktop game.
type Options struct {
	Config     config.BerzerkConfig
	Trigger    cue.Trigger
	Seed       int64 // 0 seeds from the clock
	TPS        int   // 0 means 60
	Scale      float64
	Store      *storage.Store
	Difficulty string
	Logger     *log.Logger
}

// Game implements ebiten.Game around the Berzerk simulation.
type Game struct {
	game       *berzerk.Game
	cfg        config.BerzerkConfig
	store      *storage.Store
	difficulty string
	logger     *log.Logger
	tps        int
	state      core.GameState
	scoreSaved bool

	pressed  []ebiten.Key
	released []ebiten.Key
	held     []ebiten.Key
}

// New creates a desktop game and starts the first run.
func New(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		game:       berzerk.New(opts.Config, opts.Trigger),
		cfg:        opts.Config,
		store:      opts.Store,
		difficulty: opts.Difficulty,
		logger:     opts.Logger,
		tps:        opts.TPS,
	}
	g.game.Reset(core.RuntimeConfig{TickRate: opts.TPS, Seed: opts.Seed})
	g.state = g.game.State()
	return g
}

// Update reads this tick's key edges and advances the simulation.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	g.held = inpututil.AppendPressedKeys(g.held[:0])

	return g.Step(BuildFrame(KeyEvents{Pressed: g.pressed, Released: g.released, Held: g.held}))
}

// Step applies one frame and records the run once it is over. Quit ends
// the window loop.
func (g *Game) Step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	g.state = g.game.Step(in).State
	switch {
	case !g.state.GameOver:
		g.scoreSaved = false
	case !g.scoreSaved:
		g.saveRun()
		g.scoreSaved = true
	}
	return nil
}

func (g *Game) saveRun() {
	if g.store == nil || g.state.Score == 0 {
		return
	}
	rec := storage.NewRecord(g.game.ID(), g.difficulty, g.state.Score, g.state.Level, g.state.Won)
	if _, err := g.store.SaveScore(rec); err != nil {
		g.logger.Warn("could not save score", "run", rec.RunID, "err", err)
		return
	}
	g.logger.Info("run recorded", "run", rec.RunID, "score", rec.Score, "level", rec.Level, "won", rec.Won)
}

// State returns the state observed after the last step.
func (g *Game) State() core.GameState {
	return g.state
}

// Layout returns the arena size; ebiten scales it to the window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Arena.Width), int(g.cfg.Arena.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := New(opts)

	ebiten.SetWindowSize(int(opts.Config.Arena.Width*opts.Scale), int(opts.Config.Arena.Height*opts.Scale))
	ebiten.SetWindowTitle("Berzerk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)

	g.logger.Info("window opened", "tps", g.tps, "difficulty", g.difficulty)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
