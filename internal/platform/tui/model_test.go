package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

// fakeGame records every frame it is stepped with.
type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (g *fakeGame) ID() string    { return "berzerk" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "FAKE", core.ColorRed)
}

func (g *fakeGame) State() core.GameState { return g.state }

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestModel(t *testing.T, g *fakeGame, opts GameOptions) GameModel {
	t.Helper()
	opts.Renderer = plainRenderer()
	m := NewGameModel(g, testRuntime(), opts)
	require.NotNil(t, m.Init())
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	require.NotNil(t, cmd, "tick loop continues")
	return m
}

func TestGameModelForwardsKeysOncePerTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})
	assert.Equal(t, 1, g.resets)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	tick(t, m)

	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[0].Has(core.ActionUp))
	assert.True(t, g.frames[0].Has(core.ActionFire))
	assert.False(t, g.frames[1].Has(core.ActionUp), "frame cleared after each tick")
}

func TestGameModelEmulatesRelease(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{ReleaseAfter: 2})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 4 {
		m = tick(t, m)
	}

	require.Len(t, g.frames, 4)
	assert.False(t, g.frames[1].Has(core.ActionRelease))
	assert.True(t, g.frames[2].Has(core.ActionRelease))
	assert.False(t, g.frames[3].Has(core.ActionRelease))
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})

	_, cmd := update(t, m, TickMsg{Gen: m.gen + 1})
	assert.Nil(t, cmd)
	assert.Empty(t, g.frames)
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 120, m.screen.Width())
}

func TestGameModelSavesFinishedRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{Store: store, Difficulty: "hard"})

	m = tick(t, m)
	g.state = core.GameState{Score: 350, Level: 3, GameOver: true}
	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.TopScores("berzerk", "", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 350, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, "hard", scores[0].Difficulty)
	assert.False(t, scores[0].Won)

	// A restart opens a new run
	g.state = core.GameState{Level: 1}
	m = tick(t, m)
	g.state = core.GameState{Score: 1200, Level: 5, GameOver: true, Won: true}
	tick(t, m)

	scores, err = store.TopScores("berzerk", "hard", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.True(t, scores[0].Won)
}

func TestGameModelSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{Store: store})

	g.state = core.GameState{Level: 1, GameOver: true}
	tick(t, m)

	high, err := store.HighScore("berzerk", "")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestGameModelBack(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back ignored while playing")

	g.state.Paused = true
	m = tick(t, m)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "embedded model reports back to its parent")
}

func TestGameModelBackExitsWhenStandalone(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{ExitOnBack: true})

	g.state.GameOver = true
	m = tick(t, m)
	m, cmd := update(t, m, runeKey('b'))
	assert.True(t, m.BackToMenu())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGameModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})

	m, cmd := update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestGameModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})
	assert.Contains(t, m.View(), "FAKE")
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{ScreenshotDir: dir})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Empty(t, g.frames, "screenshots do not step the game")

	files, err := filepath.Glob(filepath.Join(dir, "berzerk_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "FAKE"))
	assert.Equal(t, m.screen.String(), string(data))
}

func TestWriteScreenshotName(t *testing.T) {
	dir := t.TempDir()
	s := core.NewScreen(4, 1)
	at := time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC)

	path, err := writeScreenshot(filepath.Join(dir, "nested"), "berzerk", s, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "berzerk_20240309_170405.txt"), path)
}
