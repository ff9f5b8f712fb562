package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
)

// Colors for rendering, matching the terminal glyphs
var (
	colorBG         = color.RGBA{10, 10, 20, 255}
	colorWall       = core.ColorBlue.RGBA()
	colorPlayer     = core.ColorBrightGreen.RGBA()
	colorEnemy      = core.ColorRed.RGBA()
	colorPlayerShot = core.ColorBrightWhite.RGBA()
	colorEnemyShot  = core.ColorBrightYellow.RGBA()
	colorExit       = color.RGBA{40, 120, 40, 90}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
	colorWinOverlay = color.RGBA{0, 80, 0, 180}
)

const (
	minShotDrawSize  = 4.0
	overlayTextWidth = 6 // DebugPrint glyph width
)

// Rect is an axis-aligned rectangle in arena units.
type Rect struct {
	X, Y, W, H float64
}

// shapes lists what Draw fills, in painting order.
type shapes struct {
	walls   []Rect
	exit    Rect
	shots   []Rect
	enemies []Rect
	player  Rect
}

// layoutShapes converts a snapshot into rectangles. Bullets are points, so
// they are drawn as small squares centered on their position.
func layoutShapes(snap berzerk.Snapshot, shotSize float64) shapes {
	shotSize = max(shotSize, minShotDrawSize)
	var s shapes

	for _, w := range snap.Walls {
		s.walls = append(s.walls, Rect{w.X0, w.Y0, w.Width(), w.Height()})
	}
	ez := berzerk.ExitZone(snap.Arena)
	s.exit = Rect{ez.X0, ez.Y0, ez.X1 - ez.X0, ez.Y1 - ez.Y0}

	for _, b := range append(snap.PlayerBullets, snap.EnemyBullets...) {
		s.shots = append(s.shots, Rect{b.Pos.X - shotSize/2, b.Pos.Y - shotSize/2, shotSize, shotSize})
	}
	for _, e := range snap.Enemies {
		s.enemies = append(s.enemies, Rect{e.Pos.X, e.Pos.Y, e.Size, e.Size})
	}
	p := snap.Player
	s.player = Rect{p.Pos.X, p.Pos.Y, p.W, p.H}
	return s
}

// hudText returns the status line shown in the top-left corner.
func hudText(snap berzerk.Snapshot, finalLevel int) string {
	hearts := strings.Repeat("+", snap.Player.Health)
	return fmt.Sprintf("SCORE %05d   LEVEL %d/%d   HEALTH %s", snap.Score, snap.Level, finalLevel, hearts)
}

// Draw renders the current state.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := g.game.Snapshot()
	s := layoutShapes(snap, g.cfg.Bullet.Size)

	fillRect(screen, s.exit, colorExit)
	for _, r := range s.walls {
		fillRect(screen, r, colorWall)
	}
	nPlayer := len(snap.PlayerBullets)
	for i, r := range s.shots {
		c := colorEnemyShot
		if i < nPlayer {
			c = colorPlayerShot
		}
		fillRect(screen, r, c)
	}
	for _, r := range s.enemies {
		fillRect(screen, r, colorEnemy)
	}
	fillRect(screen, s.player, colorPlayer)

	ebitenutil.DebugPrintAt(screen, hudText(snap, g.cfg.Rules.FinalLevel), 8, 4)

	switch {
	case snap.Status == berzerk.GameOver:
		g.drawOverlay(screen, colorGameOver, fmt.Sprintf("GAME OVER\n\nScore %d\n\nPress R to restart", snap.Score))
	case snap.Status == berzerk.Won:
		g.drawOverlay(screen, colorWinOverlay, fmt.Sprintf("CONGRATS YOU WON\n\nScore %d\n\nPress R to play again", snap.Score))
	case g.state.Paused:
		g.drawOverlay(screen, colorOverlay, "PAUSED\n\nPress P to resume")
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	w, h := g.Layout(0, 0)
	fillRect(screen, Rect{0, 0, float64(w), float64(h)}, c)

	longest := 0
	for _, line := range strings.Split(text, "\n") {
		longest = max(longest, len(line))
	}
	ebitenutil.DebugPrintAt(screen, text, w/2-longest*overlayTextWidth/2, h/2-30)
}

func fillRect(dst *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
