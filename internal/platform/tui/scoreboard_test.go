package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreboardKey(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sb, cmd
}

func TestScoreboardTabs(t *testing.T) {
	assert.Equal(t, []string{"all", "easy", "normal", "hard", "fixed"}, scoreboardTabs())
}

func TestScoreboardFiltersByDifficulty(t *testing.T) {
	store := openTempStore(t)
	saveRun(t, store, "easy", 300, 2, false)
	saveRun(t, store, "normal", 1200, 5, true)
	saveRun(t, store, "normal", 500, 3, false)

	m := NewScoreboardModel(store, 100, 30, plainRenderer())
	assert.Equal(t, "", m.Difficulty())
	require.Len(t, m.Scores(), 3)
	assert.Equal(t, 1200, m.Scores()[0].Score)

	m, _ = scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "easy", m.Difficulty())
	require.Len(t, m.Scores(), 1)
	assert.Equal(t, 300, m.Scores()[0].Score)

	m, _ = scoreboardKey(t, m, runeKey('l'))
	assert.Equal(t, "normal", m.Difficulty())
	assert.Len(t, m.Scores(), 2)

	m, _ = scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Empty(t, m.Scores())
	assert.Contains(t, m.View(), "No runs recorded yet.")

	m, _ = scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "fixed", m.Difficulty(), "previous tab wraps")
}

func TestScoreboardView(t *testing.T) {
	store := openTempStore(t)
	saveRun(t, store, "hard", 2500, 5, true)

	m := NewScoreboardModel(store, 100, 30, plainRenderer())
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "2500")
	assert.Contains(t, view, "WON")
	assert.Contains(t, view, "hard")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, plainRenderer())
	assert.Empty(t, m.Scores())
	assert.Contains(t, m.View(), "Score database unavailable.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, plainRenderer())
	back, cmd := scoreboardKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, back.View())

	quit, _ := scoreboardKey(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
}
