package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/cue"
	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
)

// Game is the contract between a fixed-tick simulation and the terminal
// platform. The platform owns the loop; the game never blocks.
type Game interface {
	// ID returns the identifier used for score records.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new run with the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

var _ Game = (*berzerk.Game)(nil)

// GameSetup builds games for the platform: it loads the configuration,
// applies the difficulty preset and connects the cue sinks.
type GameSetup struct {
	// ConfigPath is an optional YAML file; empty uses the search path.
	ConfigPath string

	// Cues is a comma-separated list of sink names. Empty uses the
	// audio.sinks value from the configuration.
	Cues string

	// Logger receives sink warnings and dropped cues.
	Logger *log.Logger
}

// Launch is a game ready to run together with the configuration it was
// built from.
type Launch struct {
	Game       Game
	Config     config.BerzerkConfig
	Dispatcher *cue.Dispatcher
}

// Difficulty returns the preset name stored with score records.
func (l Launch) Difficulty() string {
	return string(l.Config.Difficulty.Preset)
}

// Build creates a game for the named difficulty. Bell cues are written to
// out, which is the local terminal or an SSH session.
func (s GameSetup) Build(difficulty string, out io.Writer) (Launch, error) {
	cfg, err := config.LoadWithPreset(s.ConfigPath, difficulty)
	if err != nil {
		return Launch{}, err
	}

	sinks := s.Cues
	if sinks == "" {
		sinks = cfg.Audio.Sinks
	}
	d, err := cue.Open(sinks, cue.Env{Logger: s.Logger, Out: out, Volume: cfg.Audio.Volume}, cfg.Audio.MaxInFlight)
	if err != nil {
		return Launch{}, err
	}

	return Launch{
		Game:       berzerk.New(cfg, d),
		Config:     cfg,
		Dispatcher: d,
	}, nil
}
