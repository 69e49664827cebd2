package sprites

import "sync"

// Loader resolves a set of sprites up front so that drawing never fails.
type Loader struct {
	catalog *Catalog

	mu     sync.RWMutex
	loaded map[string]Sprite
}

// NewLoader creates a loader backed by c.
func NewLoader(c *Catalog) *Loader {
	return &Loader{catalog: c, loaded: make(map[string]Sprite)}
}

// LoadAll resolves every name and then calls onReady. If any name is unknown
// nothing is cached, onReady is not called and the error wraps ErrUnknownSprite.
func (l *Loader) LoadAll(names []string, onReady func()) error {
	batch := make(map[string]Sprite, len(names))
	for _, name := range names {
		s, err := l.catalog.Lookup(name)
		if err != nil {
			return err
		}
		batch[name] = s
	}

	l.mu.Lock()
	for name, s := range batch {
		l.loaded[name] = s
	}
	l.mu.Unlock()

	if onReady != nil {
		onReady()
	}
	return nil
}

// Get returns a sprite resolved by an earlier LoadAll.
func (l *Loader) Get(name string) (Sprite, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.loaded[name]
	return s, ok
}

// Loaded reports how many sprites are ready.
func (l *Loader) Loaded() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.loaded)
}
