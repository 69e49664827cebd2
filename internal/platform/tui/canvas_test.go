package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/crossing"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
)

func loadedSprites(t *testing.T) *sprites.Loader {
	t.Helper()

	catalog, err := sprites.Default()
	if err != nil {
		t.Fatalf("sprites.Default() failed: %v", err)
	}
	l := sprites.NewLoader(catalog)
	if err := l.LoadAll(crossing.SpriteNames(), func() {}); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	return l
}

func newTestRenderer(t *testing.T) (*screenRenderer, *core.Screen, *sprites.Loader) {
	t.Helper()

	l := loadedSprites(t)
	screen := core.NewScreen(ScreenWidth, ScreenHeight)
	return newScreenRenderer(screen, l, config.DefaultCrossingConfig()), screen, l
}

func TestToCell(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		col, line int
	}{
		{"player start", 202, 400, 20, 15},
		{"goal row", 202, 60, 20, 3},
		{"left edge", 2, 315, 0, 12},
		{"right column", 402, 230, 40, 9},
		{"enemy lane 145", 300, 145, 30, 6},
		{"offscreen enemy", -50, 60, -5, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, line := toCell(tc.x, tc.y)
			if col != tc.col || line != tc.line {
				t.Errorf("toCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, line, tc.col, tc.line)
			}
		})
	}
}

func TestDrawBackgroundRows(t *testing.T) {
	r, screen, l := newTestRenderer(t)
	r.DrawBackground()

	for row, name := range rowTiles {
		s, _ := l.Get(name)
		for dy := 0; dy < linesPerRow; dy++ {
			line := row*linesPerRow + dy
			for _, col := range []int{0, fieldCols / 2, fieldCols - 1} {
				if c := screen.GetCell(col, line); c.Color != s.Color {
					t.Errorf("cell (%d,%d) color = %v, expected %v (%s)", col, line, c.Color, s.Color, name)
				}
			}
		}
	}

	if got := screen.GetCell(fieldCols, 0); got.Rune != ' ' {
		t.Errorf("background spilled into the HUD: %q", got.Rune)
	}
}

func TestDrawEntityClipsToField(t *testing.T) {
	r, screen, _ := newTestRenderer(t)

	// Column 48: the bug's body starts at the field's second-last column.
	r.DrawEntity(crossing.SpriteEnemy, 485, 60)

	if got := screen.Get(48, 4); got != '<' {
		t.Errorf("Get(48, 4) = %q, expected '<'", got)
	}
	if got := screen.Get(49, 4); got != '(' {
		t.Errorf("Get(49, 4) = %q, expected '('", got)
	}
	for x := fieldCols; x < ScreenWidth; x++ {
		if got := screen.Get(x, 4); got != ' ' {
			t.Fatalf("Get(%d, 4) = %q, sprite was not clipped at the field edge", x, got)
		}
	}
}

func TestDrawEntityTransparentSpaces(t *testing.T) {
	r, screen, l := newTestRenderer(t)
	r.DrawBackground()
	r.DrawEntity(crossing.SpritePlayer, 202, 400)

	// The hero's first glyph row starts with spaces; the grass must show through.
	grass, _ := l.Get(crossing.SpriteGrass)
	if c := screen.GetCell(20, 15); c.Color != grass.Color {
		t.Errorf("cell under transparent space color = %v, expected grass %v", c.Color, grass.Color)
	}
	if got := screen.Get(24, 15); got != '/' {
		t.Errorf("Get(24, 15) = %q, expected '/'", got)
	}
}

func TestDrawEntityUnknownSprite(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.DrawEntity("no-such-sprite", 0, 60)

	if got := screen.Get(0, 3); got != '?' {
		t.Errorf("Get(0, 3) = %q, expected '?'", got)
	}
}

func TestDrawHUD(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.DrawHUD(15, 3.3)

	if row := screen.Row(2); !strings.Contains(row, "Time Left: 3.3") {
		t.Errorf("HUD row 2 = %q, expected the timer", row)
	}
	if row := screen.Row(4); !strings.Contains(row, "Score: 15") {
		t.Errorf("HUD row 4 = %q, expected the score", row)
	}

	r.DrawHUD(-5, -0.04)
	if row := screen.Row(2); !strings.Contains(row, "Time Left: 0.0") {
		t.Errorf("HUD row 2 = %q, negative timer should show as 0.0", row)
	}
	if row := screen.Row(4); !strings.Contains(row, "Score: -5") {
		t.Errorf("HUD row 4 = %q, expected the negative score", row)
	}
}

func TestDrawStartScreen(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.DrawStartScreen()

	out := screen.String()
	for _, want := range []string{
		"BUG CROSSING",
		"Meet the Cast",
		"Our Hero",
		"Learn the Rules",
		"You have 10 seconds to reach the water.",
		"Bugs eat you. That costs 5 points.",
		"Ready to Play? Hit Enter",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen is missing %q", want)
		}
	}
}

func TestOverlaysDesaturate(t *testing.T) {
	tests := []struct {
		name string
		draw func(r *screenRenderer)
		want string
	}{
		{"paused", (*screenRenderer).DrawPausedOverlay, "GAME IS PAUSED"},
		{"game over", (*screenRenderer).DrawGameOverOverlay, "GAME IS OVER. YOU LOSE."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, screen, _ := newTestRenderer(t)
			r.DrawBackground()
			r.DrawHUD(0, 10)
			tc.draw(r)

			if c := screen.GetCell(0, 0); c.Color != core.ColorGray {
				t.Errorf("corner color = %v, expected gray", c.Color)
			}
			if c := screen.GetCell(fieldCols+2, 4); c.Color != core.ColorGray {
				t.Errorf("HUD color = %v, expected gray", c.Color)
			}
			if !strings.Contains(screen.String(), tc.want) {
				t.Errorf("overlay is missing %q", tc.want)
			}
		})
	}
}

func TestGameRendersIntoScreen(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	g := crossing.New(config.DefaultCrossingConfig(), 7, t0)
	g.HandleInput(core.ActionPlay)
	g.Render(r)

	if got := screen.Get(24, 15); got != '/' {
		t.Errorf("player glyph at (24,15) = %q, expected '/'", got)
	}
	if row := screen.Row(4); !strings.Contains(row, "Score: 0") {
		t.Errorf("HUD row 4 = %q", row)
	}
}
