package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

// MenuChoice is what the user picked on the title screen.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuItem is one line of the title menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{MenuPlay, "Play"},
	{MenuScores, "High Scores"},
	{MenuQuit, "Quit"},
}

const menuControls = "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"

// MenuModel is the title screen: pick an entry and a difficulty preset.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // index into config.Presets
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	theme      theme
	notice     string
	chosen     MenuChoice
}

// NewMenuModel builds the title screen with difficulty preselected.
// Unknown names fall back to normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string, r *lipgloss.Renderer) MenuModel {
	return MenuModel{
		items:      menuItems,
		difficulty: presetIndex(difficulty),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		theme:      newTheme(r),
	}
}

func presetIndex(name string) int {
	p, err := config.ParseDifficulty(name)
	if err != nil {
		p = config.DifficultyNormal
	}
	for i, candidate := range config.Presets {
		if candidate == p {
			return i
		}
	}
	return 0
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(config.Presets)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionLeft:
		m.difficulty = (m.difficulty + n - 1) % n
	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % n
	case MenuActionSelect:
		return m.choose(m.items[m.cursor].Choice)
	case MenuActionScoreboard:
		return m.choose(MenuScores)
	case MenuActionQuit:
		return m.choose(MenuQuit)
	}
	return m, nil
}

// choose ends this menu's program with c as the result.
func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.chosen = c
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.chosen == MenuQuit {
		return ""
	}
	w, th := m.config.ScreenW, m.theme

	lines := []string{
		"",
		centerStyled(th.title, "  B E R Z E R K  ", w),
		"",
		centerStyled(th.dim, "Clear the room, reach the exit, survive five levels", w),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, centerStyled(th.active, "> "+item.Title+" <", w))
		} else {
			lines = append(lines, centerText(item.Title, w))
		}
	}

	lines = append(lines, "", centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), w))
	if best := m.bestScore(); best > 0 {
		lines = append(lines, centerStyled(th.dim, fmt.Sprintf("Best: %d", best), w))
	}
	if m.notice != "" {
		lines = append(lines, "", centerStyled(th.notice, m.notice, w))
	}
	lines = append(lines, "", centerStyled(th.dim, menuControls, w), "")

	return strings.Join(lines, "\n")
}

// bestScore is the high score of the selected difficulty. Store errors
// read as no score.
func (m MenuModel) bestScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(berzerk.GameID, m.Difficulty())
	if err != nil {
		return 0
	}
	return best
}

// Chosen is the picked entry, MenuNone while the menu is still open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Difficulty is the selected preset name.
func (m MenuModel) Difficulty() string {
	return string(config.Presets[m.difficulty])
}

// Config returns the runtime config, resized along with the terminal.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// WithNotice reopens the menu with msg shown under the difficulty,
// keeping the selections.
func (m MenuModel) WithNotice(msg string) MenuModel {
	m.notice = msg
	m.chosen = MenuNone
	return m
}
