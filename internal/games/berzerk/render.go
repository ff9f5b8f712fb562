package berzerk

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-berzerk/internal/core"
)

// Rendering characters
const (
	WallChar        = '█'
	PlayerChar      = '@'
	EnemyChar       = 'R'
	PlayerShotChar  = '•'
	EnemyShotChar   = '∙'
	HeartChar       = '♥'
	hudRows         = 1
	minScreenWidth  = 40
	minScreenHeight = 12
)

// viewport maps arena units onto character cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(a Arena, cols, rows int) viewport {
	return viewport{
		sx:  float64(cols) / a.W,
		sy:  float64(rows) / a.H,
		top: hudRows,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y*v.sy)) + v.top
}

func (v viewport) wallRect(w Wall) core.Rect {
	x0 := int(math.Floor(w.X0 * v.sx))
	y0 := int(math.Floor(w.Y0 * v.sy))
	x1 := int(math.Ceil(w.X1 * v.sx))
	y1 := int(math.Ceil(w.Y1 * v.sy))
	return core.NewRect(x0, y0+v.top, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the arena scaled to the screen with a one-line HUD on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	snap := g.engine.Snapshot()
	v := newViewport(snap.Arena, dst.Width(), dst.Height()-hudRows)

	for _, w := range snap.Walls {
		dst.DrawRect(v.wallRect(w), WallChar, core.ColorBlue)
	}

	for _, b := range snap.PlayerBullets {
		x, y := v.cell(b.Pos)
		dst.SetColored(x, y, PlayerShotChar, core.ColorBrightWhite)
	}
	for _, b := range snap.EnemyBullets {
		x, y := v.cell(b.Pos)
		dst.SetColored(x, y, EnemyShotChar, core.ColorBrightYellow)
	}
	for _, en := range snap.Enemies {
		x, y := v.cell(en.Pos.Add(core.V(en.Size/2, en.Size/2)))
		dst.SetColored(x, y, EnemyChar, core.ColorRed)
	}

	p := snap.Player
	px, py := v.cell(p.Pos.Add(core.V(p.W/2, p.H/2)))
	dst.SetColored(px, py, PlayerChar, core.ColorBrightGreen)

	g.drawHUD(dst, snap)

	switch {
	case snap.Status == GameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score %d  |  Press R to restart", snap.Score))
	case snap.Status == Won:
		g.drawCenteredMessage(dst, "CONGRATS YOU WON", fmt.Sprintf("Score %d  |  Press R to play again", snap.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" SCORE %05d   LEVEL %d/%d   ", snap.Score, snap.Level, g.cfg.Rules.FinalLevel)
	dst.DrawTextColored(0, 0, left, core.ColorBrightYellow)

	hearts := strings.Repeat(string(HeartChar), snap.Player.Health)
	dst.DrawTextColored(len(left), 0, hearts, core.ColorBrightRed)

	help := "arrows move  space fire  p pause  r restart  q quit "
	if x := dst.Width() - len(help); x > len(left)+snap.Player.MaxHealth+1 {
		dst.DrawTextColored(x, 0, help, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
