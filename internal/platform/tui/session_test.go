package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
)

func newTestSession(t *testing.T, setup GameSetup) SessionModel {
	t.Helper()
	// Keep the user's config file out of the search path
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(testRuntime(), SessionOptions{
		Setup:    setup,
		Store:    openTempStore(t),
		Out:      io.Discard,
		Renderer: plainRenderer(),
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestGameSetupBuild(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	launch, err := GameSetup{Cues: "none"}.Build("hard", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "hard", launch.Difficulty())
	assert.Equal(t, berzerk.GameID, launch.Game.ID())
	require.NotNil(t, launch.Dispatcher)

	_, err = GameSetup{Cues: "none"}.Build("nightmare", io.Discard)
	assert.Error(t, err)

	_, err = GameSetup{Cues: "trumpet"}.Build("normal", io.Discard)
	assert.Error(t, err)
}

func TestGameSetupBuildReadsConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "berzerk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  preset: easy\n"), 0o600))

	launch, err := GameSetup{ConfigPath: path, Cues: "none"}.Build("", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "easy", launch.Difficulty())
}

func TestSessionPlayAndBack(t *testing.T) {
	m := newTestSession(t, GameSetup{Cues: "none"})
	assert.False(t, m.InGame())

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	require.NotNil(t, cmd, "game starts its tick loop")

	// Pause, then back out to the menu
	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{Gen: m.game.gen})
	require.True(t, m.game.State().Paused)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InGame())
	assert.Contains(t, m.View(), "B E R Z E R K")
}

func TestSessionSetupErrorShowsNotice(t *testing.T) {
	m := newTestSession(t, GameSetup{Cues: "trumpet"})

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.InGame())
	assert.Contains(t, m.View(), "trumpet")
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t, GameSetup{Cues: "none"})

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, 120, m.menu.Config().ScreenW, "menu catches up with resizes")
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, GameSetup{Cues: "none"})

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	require.NotNil(t, cmd)

	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
