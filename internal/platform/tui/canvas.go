package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/crossing"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
)

// Terminal layout of the field. One tile is 101 field pixels wide and 85 tall
// and maps to 10 columns by 3 lines.
const (
	pxPerCol    = 10.1
	pxPerRow    = 85.0
	rowOffset   = 25.0 // Entities are drawn 25px above their tile top
	linesPerRow = 3
	tileCols    = 10
	fieldRows   = 6
	fieldCols   = 50
	hudCols     = 20

	// ScreenWidth and ScreenHeight are the size of one rendered frame.
	ScreenWidth  = fieldCols + hudCols
	ScreenHeight = fieldRows * linesPerRow
)

// rowTiles lists the background tile per field row, top to bottom.
var rowTiles = [fieldRows]string{
	crossing.SpriteWater,
	crossing.SpriteStone,
	crossing.SpriteStone,
	crossing.SpriteStone,
	crossing.SpriteGrass,
	crossing.SpriteGrass,
}

// screenRenderer paints the game into a core.Screen. It implements crossing.Renderer.
type screenRenderer struct {
	screen  *core.Screen
	sprites *sprites.Loader
	cfg     config.CrossingConfig
	field   core.Rect
	hud     core.Rect
}

func newScreenRenderer(screen *core.Screen, loader *sprites.Loader, cfg config.CrossingConfig) *screenRenderer {
	return &screenRenderer{
		screen:  screen,
		sprites: loader,
		cfg:     cfg,
		field:   core.NewRect(0, 0, fieldCols, ScreenHeight),
		hud:     core.NewRect(fieldCols, 0, hudCols, ScreenHeight),
	}
}

// toCell maps field pixels to the top-left cell of an entity sprite.
func toCell(x, y float64) (col, line int) {
	col = int(math.Round(x / pxPerCol))
	line = int(math.Floor((y+rowOffset)/pxPerRow)) * linesPerRow
	return col, line
}

// DrawBackground tiles the field row by row.
func (r *screenRenderer) DrawBackground() {
	r.screen.Clear()
	for row, name := range rowTiles {
		for col := 0; col < fieldCols; col += tileCols {
			r.blit(name, col, row*linesPerRow)
		}
	}
}

// DrawEntity draws a sprite at a field position, clipped to the play field.
func (r *screenRenderer) DrawEntity(sprite string, x, y float64) {
	col, line := toCell(x, y)
	r.blit(sprite, col, line)
}

func (r *screenRenderer) blit(name string, col, line int) {
	s, ok := r.sprites.Get(name)
	if !ok {
		r.screen.SetWithColor(col, line, '?', core.ColorBrightRed)
		return
	}

	for dy, row := range s.Rows {
		dx := 0
		for _, ch := range row {
			x, y := col+dx, line+dy
			dx++
			if x < r.field.X || x >= r.field.Right() || y < r.field.Y || y >= r.field.Bottom() {
				continue
			}
			if ch == ' ' && !s.Opaque {
				continue
			}
			r.screen.SetWithColor(x, y, ch, s.Color)
		}
	}
}

// DrawHUD draws the score board strip right of the field.
func (r *screenRenderer) DrawHUD(score int, timer float64) {
	hud := r.hud
	r.screen.DrawRect(hud, ' ', core.ColorDefault)
	r.screen.DrawBox(hud, core.ColorGray)

	x := hud.X + 2
	r.screen.DrawTextWithColor(x, hud.Y+2, fmt.Sprintf("Time Left: %.1f", math.Max(0, timer)), core.ColorBrightYellow)
	r.screen.DrawTextWithColor(x, hud.Y+4, fmt.Sprintf("Score: %d", score), core.ColorBrightWhite)

	r.screen.DrawTextWithColor(x, hud.Y+8, "Spacebar", core.ColorCyan)
	r.screen.DrawText(x, hud.Y+9, "to pause")
	r.screen.DrawTextWithColor(x, hud.Y+11, "Enter", core.ColorCyan)
	r.screen.DrawText(x, hud.Y+12, "for instructions")
	r.screen.DrawTextWithColor(x, hud.Y+14, "Arrows/WASD", core.ColorCyan)
	r.screen.DrawText(x, hud.Y+15, "to move")
}

// DrawStartScreen draws the title, the cast and the rules.
func (r *screenRenderer) DrawStartScreen() {
	s := r.screen
	s.Clear()
	full := core.NewRect(0, 0, ScreenWidth, ScreenHeight)
	s.DrawBox(full, core.ColorBlue)
	s.DrawTextCentered(1, "BUG CROSSING", core.ColorBrightYellow)

	cast := []struct {
		sprite string
		label  string
	}{
		{crossing.SpritePlayer, "Our Hero"},
		{crossing.SpriteEnemy, "Our Enemies"},
		{crossing.SpriteGem, "Our Loot"},
	}
	s.DrawTextWithColor(3, 3, "Meet the Cast", core.ColorBrightWhite)
	for i, c := range cast {
		line := 4 + i*4
		r.drawSprite(c.sprite, 2, line)
		s.DrawText(13, line+1, c.label)
	}

	rules := r.rules()
	s.DrawTextWithColor(27, 3, "Learn the Rules", core.ColorBrightWhite)
	for i, text := range rules {
		s.DrawText(27, 4+i, text)
	}

	s.DrawTextCentered(ScreenHeight-2, "Ready to Play? Hit Enter", core.ColorBrightGreen)
}

// drawSprite draws a sprite without field clipping, for the start screen.
func (r *screenRenderer) drawSprite(name string, col, line int) {
	sp, ok := r.sprites.Get(name)
	if !ok {
		return
	}
	for dy, row := range sp.Rows {
		dx := 0
		for _, ch := range row {
			if ch != ' ' || sp.Opaque {
				r.screen.SetWithColor(col+dx, line+dy, ch, sp.Color)
			}
			dx++
		}
	}
}

func (r *screenRenderer) rules() []string {
	sc := r.cfg.Scoring
	return []string{
		fmt.Sprintf("You have %g seconds to reach the water.", r.cfg.Timer.Seconds),
		fmt.Sprintf("Getting there nets you %d points.", sc.Crossing),
		"Pick up a gemstone on the way,",
		fmt.Sprintf("get an extra %d points.", sc.Gem),
		fmt.Sprintf("Bugs eat you. That costs %d points.", sc.Collision),
		"And don't just stand around.",
		fmt.Sprintf("Running out of time costs %d.", sc.Timeout),
		"The game is over when your",
		"score falls below zero.",
	}
}

// DrawPausedOverlay greys out the frame and shows the pause message.
func (r *screenRenderer) DrawPausedOverlay() {
	r.drawMessage(core.ColorBrightYellow,
		"GAME IS PAUSED",
		"Hit spacebar again",
		"to continue playing",
	)
}

// DrawGameOverOverlay greys out the frame and shows the game-over message.
func (r *screenRenderer) DrawGameOverOverlay() {
	r.drawMessage(core.ColorBrightRed,
		"GAME IS OVER. YOU LOSE.",
		"Press R",
		"to play again",
	)
}

func (r *screenRenderer) drawMessage(c core.Color, lines ...string) {
	r.screen.Desaturate()

	w := 0
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	box := r.field.Centered(w+4, len(lines)+2)
	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		r.screen.DrawTextWithColor(x, box.Y+1+i, l, c)
	}
}
