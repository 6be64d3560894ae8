// Package window provides a desktop front-end for the arena on ebiten.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/amalg/bomb-arena/internal/game"
)

// HUDHeight is the strip below the board reserved for the status panel.
const HUDHeight = 48

const fuseBlink = 250 * time.Millisecond

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{40, 90, 40, 255}
	colorHardWall = color.RGBA{80, 80, 100, 255}
	colorSoftWall = color.RGBA{139, 105, 20, 255}
	colorBomb     = color.RGBA{20, 20, 20, 255}
	colorFuse     = color.RGBA{255, 68, 68, 255}
	colorPickup   = color.RGBA{68, 221, 255, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 160}

	// Faded by alpha, so kept non-premultiplied
	colorFire     = color.NRGBA{255, 102, 0, 255}
	colorFireCore = color.NRGBA{255, 204, 0, 255}
	colorPlayer   = color.NRGBA{100, 200, 100, 255}
	colorBot      = color.NRGBA{200, 100, 200, 255}
)

// dirKeys are the keys that hold each direction.
var dirKeys = [len(game.Directions)][]ebiten.Key{
	game.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	game.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	game.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// pickupLabels mark each pickup kind.
var pickupLabels = map[game.PowerUpKind]string{
	game.ExtraBomb:  "B",
	game.ExtraRange: "F",
	game.ExtraSpeed: "S",
}

// Game implements ebiten.Game on top of a session engine.
// The engine is stepped from Update, one fixed tick per frame.
type Game struct {
	engine *game.Engine
	held   [len(game.Directions)]bool
	dt     time.Duration
}

// New creates a window front-end for the engine.
func New(engine *game.Engine) *Game {
	return &Game{
		engine: engine,
		dt:     time.Second / time.Duration(engine.Config.TickRate),
	}
}

// FitTileSize returns the largest whole-pixel tile size at which a board of
// cols x rows fits into a w x h viewport. It never returns less than 1.
func FitTileSize(w, h, cols, rows int) float64 {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return float64(max(min(w/cols, h/rows), 1))
}

// Update translates input into engine actions and advances the session.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, d := range game.Directions {
		pressed := anyPressed(dirKeys[d])
		if pressed == g.held[d] {
			continue
		}
		g.held[d] = pressed
		action := game.Action{Type: game.ActionRelease, Dir: d}
		if pressed {
			action.Type = game.ActionHold
		}
		g.engine.EnqueueAction(action)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.EnqueueAction(game.Action{Type: game.ActionPlaceBomb, Dir: game.DirNone})
	}

	if g.engine.Telemetry().Status != game.StatusRunning &&
		(inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		g.engine.Restart()
		// Keys still down belong to the new session only once pressed again.
		g.held = [len(game.Directions)]bool{}
		return nil
	}

	g.engine.Step(g.dt)
	return nil
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw renders the session snapshot.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	s := g.engine.Snapshot()
	ts := s.TileSize

	for row := 0; row < s.Board.Rows; row++ {
		for col := 0; col < s.Board.Cols; col++ {
			c := colorGround
			switch s.Board.At(col, row) {
			case game.HardWall:
				c = colorHardWall
			case game.SoftWall:
				c = colorSoftWall
			}
			ebitenutil.DrawRect(screen, float64(col)*ts, float64(row)*ts, ts, ts, c)
		}
	}

	for _, p := range s.PowerUps {
		box := p.Box(ts, g.engine.Config.PowerUpScale)
		ebitenutil.DrawRect(screen, box.X, box.Y, box.W, box.H, colorPickup)
		ebitenutil.DebugPrintAt(screen, pickupLabels[p.Kind], int(box.X+box.W/2)-3, int(box.Y+box.H/2)-8)
	}

	for _, b := range s.Bombs {
		cx := float64(b.Tile.Col)*ts + ts/2
		cy := float64(b.Tile.Row)*ts + ts/2
		ebitenutil.DrawCircle(screen, cx, cy, ts*0.4, colorBomb)
		if ((s.Clock-b.PlacedAt)/fuseBlink)%2 == 0 {
			ebitenutil.DrawCircle(screen, cx, cy-ts*0.35, ts*0.08, colorFuse)
		}
	}

	for _, x := range s.Explosions {
		fire := colorFire
		if x.Ratio() > 0.5 {
			fire = colorFireCore
		}
		fire.A = uint8(155 + 100*x.Ratio())
		for _, t := range x.Tiles {
			ebitenutil.DrawRect(screen, float64(t.Col)*ts, float64(t.Row)*ts, ts, ts, fire)
		}
	}

	for _, c := range s.Characters() {
		g.drawCharacter(screen, c)
	}

	g.drawHUD(screen, &s)
}

// drawCharacter draws a character, shrinking it through its death animation.
func (g *Game) drawCharacter(screen *ebiten.Image, c *game.Character) {
	clr := colorBot
	if c.Role == game.RolePlayer {
		clr = colorPlayer
	}
	w, h := c.Width, c.Height
	if c.Dying {
		shrink := 1 - c.DeathProgress(g.engine.Config.DeathDelay)
		w *= shrink
		h *= shrink
		clr.A = uint8(255 * shrink)
	}
	ebitenutil.DrawRect(screen, c.X+(c.Width-w)/2, c.Y+(c.Height-h)/2, w, h, clr)
}

// drawHUD renders the status panel under the board and the game-over overlay.
func (g *Game) drawHUD(screen *ebiten.Image, s *game.State) {
	t := g.engine.Telemetry()
	if t.Generation != s.Generation {
		return
	}
	top := int(float64(s.Board.Rows)*s.TileSize) + 4
	status := fmt.Sprintf("Lives: %d  Bombs: %d  Range: %d  Speed: %.1f  Bots: %d",
		t.Lives, t.MaxBombs, t.BombRange, t.BaseSpeed, t.BotsRemaining)
	ebitenutil.DebugPrintAt(screen, status, 8, top)
	ebitenutil.DebugPrintAt(screen, "WASD/Arrows: Move | Space: Bomb | Esc: Quit", 8, top+16)

	if s.Status == game.StatusRunning {
		return
	}
	bw, bh := float64(s.Board.Cols)*s.TileSize, float64(s.Board.Rows)*s.TileSize
	ebitenutil.DrawRect(screen, 0, 0, bw, bh, colorOverlay)
	text := "DEFEAT!"
	if s.Status == game.StatusWon {
		text = "VICTORY!"
	}
	ebitenutil.DebugPrintAt(screen, text+"\nPress R or Enter to play again", int(bw/2)-90, int(bh/2)-16)
}

// Layout fits the board to the window and rescales the session to match.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.engine.Config
	g.engine.Resize(FitTileSize(outsideWidth, outsideHeight-HUDHeight, cfg.Cols, cfg.Rows))
	return outsideWidth, outsideHeight
}
