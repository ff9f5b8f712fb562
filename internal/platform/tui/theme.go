package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// xterm 256-color indexes used by the menus.
const (
	colorTitle  = lipgloss.Color("10")
	colorAccent = lipgloss.Color("229")
	colorActive = lipgloss.Color("11")
	colorHilite = lipgloss.Color("57")
	colorDim    = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("241")
	colorBorder = lipgloss.Color("240")
	colorAlert  = lipgloss.Color("9")
)

// theme holds the styles of the menu screens. Styles are bound to one
// renderer so that every SSH session gets its own color profile.
type theme struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	active    lipgloss.Style
	dim       lipgloss.Style
	help      lipgloss.Style
	notice    lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	panel     lipgloss.Style
	empty     lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return theme{
		title:     r.NewStyle().Bold(true).Foreground(colorTitle),
		heading:   r.NewStyle().Bold(true).Foreground(colorAccent),
		active:    r.NewStyle().Bold(true).Foreground(colorActive),
		dim:       r.NewStyle().Foreground(colorDim),
		help:      r.NewStyle().Foreground(colorMuted),
		notice:    r.NewStyle().Foreground(colorAlert),
		tab:       r.NewStyle().Foreground(colorMuted).Padding(0, 1),
		activeTab: r.NewStyle().Bold(true).Foreground(colorAccent).Background(colorHilite).Padding(0, 1),
		panel:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		empty:     r.NewStyle().Foreground(colorMuted).Italic(true).Padding(2, 4),
	}
}

// centerText pads text on the left so it sits in the middle of width
// columns. Text wider than the line is returned as is.
func centerText(text string, width int) string {
	if pad := (width - lipgloss.Width(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

// centerStyled centers on the unstyled width, then applies st.
func centerStyled(st lipgloss.Style, text string, width int) string {
	if pad := (width - lipgloss.Width(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + st.Render(text)
	}
	return st.Render(text)
}
