package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

const (
	scoreboardRows = 100 // runs loaded per tab
	allTabLabel    = "all"

	// Columns other than the date, plus the panel border and padding.
	fixedColumnsWidth = 46 + 4
)

// ScoreboardKeyMap binds the scoreboard keys. It implements help.KeyMap.
type ScoreboardKeyMap struct {
	Up, Down         key.Binding
	NextTab, PrevTab key.Binding
	Back, Quit       key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextTab, k.PrevTab}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap uses arrows with vi keys for scrolling and tab
// or left/right for the difficulty filter.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(hint, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(hint, desc))
	}
	return ScoreboardKeyMap{
		Up:      bind("up/k", "scroll up", "up", "k"),
		Down:    bind("down/j", "scroll down", "down", "j"),
		NextTab: bind("tab/right", "next difficulty", "tab", "right", "l"),
		PrevTab: bind("S-tab/left", "prev difficulty", "shift+tab", "left", "h"),
		Back:    bind("esc/b", "back", "esc", "b"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
	}
}

// scoreboardTabs is every run first, then one tab per preset.
func scoreboardTabs() []string {
	tabs := []string{allTabLabel}
	for _, p := range config.Presets {
		tabs = append(tabs, string(p))
	}
	return tabs
}

// ScoreboardModel lists recorded runs filtered by difficulty.
type ScoreboardModel struct {
	tabs      []string
	tab       int
	store     *storage.Store
	scores    []storage.Record
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	theme     theme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the "all" tab. A nil store shows a notice
// instead of the table.
func NewScoreboardModel(store *storage.Store, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	m := ScoreboardModel{
		tabs:   scoreboardTabs(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		theme:  newTheme(r),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Result", Width: 8},
			{Title: "Mode", Width: 8},
			{Title: "Date", Width: min(max(m.width-fixedColumnsWidth, 12), 18)},
		}),
		table.WithFocused(true),
		// title, tabs, panel border and help take nine rows
		table.WithHeight(max(m.height-9, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(colorAccent).Background(colorHilite).Bold(false)
	t.SetStyles(st)
	return t
}

// Difficulty is the active filter; empty means every difficulty.
func (m ScoreboardModel) Difficulty() string {
	if name := m.tabs[m.tab]; name != allTabLabel {
		return name
	}
	return ""
}

// reload queries the runs of the active tab.
func (m *ScoreboardModel) reload() {
	m.scores, m.loadErr = nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(berzerk.GameID, m.Difficulty(), scoreboardRows)
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		result := "lost"
		if s.Won {
			result = "WON"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			result,
			s.Difficulty,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchTab(step int) {
	n := len(m.tabs)
	m.tab = (m.tab + step + n) % n
	m.reload()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	th := m.theme

	tabs := make([]string, len(m.tabs))
	for i, name := range m.tabs {
		if i == m.tab {
			tabs[i] = th.activeTab.Render(name)
		} else {
			tabs[i] = th.tab.Render(name)
		}
	}

	return strings.Join([]string{
		"",
		centerStyled(th.heading, "HIGH SCORES - Berzerk", m.width),
		"",
		centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width),
		"",
		th.panel.Render(m.body()),
		th.help.Render(m.help.View(m.keys)),
	}, "\n")
}

// body is the table, or a message when there is nothing to list.
func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return m.theme.empty.Render("Score database unavailable.")
	case m.loadErr != nil:
		return m.theme.empty.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return m.theme.empty.Render("No runs recorded yet.\nFinish a run to set a high score!")
	}
	return m.table.View()
}

// Scores returns the runs of the active tab.
func (m ScoreboardModel) Scores() []storage.Record {
	return m.scores
}

// IsGoingBack reports that the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports that the user asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
