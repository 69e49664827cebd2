// Package sprites provides the terminal glyphs for game sprites and the
// loader the host waits on before a game starts.
package sprites

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ErrUnknownSprite is returned when a sprite name is not in the catalog.
var ErrUnknownSprite = errors.New("sprites: unknown sprite")

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a small block of glyphs drawn with a single colour.
type Sprite struct {
	Name   string
	Rows   []string
	Color  core.Color
	Opaque bool // Spaces overwrite what is below
}

// Width returns the widest row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = core.Max(w, utf8.RuneCountInString(row))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

type spriteFile struct {
	Sprites []spriteEntry `yaml:"sprites"`
}

type spriteEntry struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Opaque bool     `yaml:"opaque"`
	Rows   []string `yaml:"rows"`
}

// Catalog holds sprites by name. It is safe for concurrent use, so one
// catalog can serve every SSH session.
type Catalog struct {
	mu      sync.RWMutex
	sprites map[string]Sprite
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{sprites: make(map[string]Sprite)}
}

// Parse builds a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sprites: parse catalog: %w", err)
	}

	c := NewCatalog()
	for _, e := range f.Sprites {
		s := Sprite{
			Name:   e.Name,
			Rows:   e.Rows,
			Color:  core.ParseColor(e.Color),
			Opaque: e.Opaque,
		}
		if err := c.Register(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary. It is parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultSpritesYAML)
	})
	return defaultCatalog, defaultErr
}

// Register adds a sprite. Names must be unique and sprites must have rows.
func (c *Catalog) Register(s Sprite) error {
	if s.Name == "" {
		return errors.New("sprites: sprite without a name")
	}
	if len(s.Rows) == 0 {
		return fmt.Errorf("sprites: sprite %q has no rows", s.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sprites[s.Name]; exists {
		return fmt.Errorf("sprites: sprite %q already registered", s.Name)
	}
	c.sprites[s.Name] = s
	return nil
}

// Lookup returns the sprite with the given name.
func (c *Catalog) Lookup(name string) (Sprite, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return s, nil
}

// List returns all sprite names, sorted.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.sprites))
	for name := range c.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
