package sprites

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

var gameSprites = []string{
	"stone-block", "water-block", "grass-block", "enemy-bug", "char-horn-girl", "gem-orange",
}

func TestDefaultCatalogHasGameSprites(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	for _, name := range gameSprites {
		s, err := c.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", name, err)
			continue
		}
		if s.Width() != 10 || s.Height() != 3 {
			t.Errorf("%s is %dx%d, want 10x3", name, s.Width(), s.Height())
		}
		if s.Color == core.ColorDefault {
			t.Errorf("%s has no colour", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	c := NewCatalog()
	_, err := c.Lookup("missing")
	if !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Lookup(missing) error = %v, want ErrUnknownSprite", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
sprites:
  - name: b
    color: red
    rows: ["xx", "x"]
  - name: a
    color: cyan
    opaque: true
    rows: ["yyy"]
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := c.List(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("List() = %v, want [a b]", got)
	}
	b, _ := c.Lookup("b")
	if b.Color != core.ColorRed || b.Width() != 2 || b.Height() != 2 || b.Opaque {
		t.Errorf("b = %+v", b)
	}
	a, _ := c.Lookup("a")
	if !a.Opaque || a.Color != core.ColorCyan {
		t.Errorf("a = %+v", a)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "sprites: [unclosed"},
		{"duplicate", "sprites:\n  - {name: a, rows: [x]}\n  - {name: a, rows: [y]}\n"},
		{"no rows", "sprites:\n  - {name: a}\n"},
		{"no name", "sprites:\n  - {rows: [x]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	l := NewLoader(c)

	ready := 0
	if err := l.LoadAll(gameSprites, func() { ready++ }); err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if ready != 1 {
		t.Errorf("onReady called %d times, want 1", ready)
	}
	if l.Loaded() != len(gameSprites) {
		t.Errorf("Loaded() = %d, want %d", l.Loaded(), len(gameSprites))
	}
	if _, ok := l.Get("enemy-bug"); !ok {
		t.Error("enemy-bug not available after LoadAll")
	}
}

func TestLoaderUnknownSpriteBlocksReady(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	l := NewLoader(c)

	called := false
	err = l.LoadAll([]string{"enemy-bug", "dragon"}, func() { called = true })
	if !errors.Is(err, ErrUnknownSprite) {
		t.Fatalf("LoadAll() error = %v, want ErrUnknownSprite", err)
	}
	if called {
		t.Error("onReady called despite an unknown sprite")
	}
	if l.Loaded() != 0 {
		t.Errorf("Loaded() = %d after a failed batch, want 0", l.Loaded())
	}
}
