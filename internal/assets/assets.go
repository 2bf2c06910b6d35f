// Package assets loads the sprites the game draws.
// Sprites are small YAML files listing text rows and a color; a manifest maps
// each asset identifier to its file. Everything is loaded up front so lookups
// during play never touch the filesystem.
package assets

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-ski/internal/core"
	"gopkg.in/yaml.v3"
)

// Asset is a loaded sprite with its world-unit size.
type Asset struct {
	Name   string
	Extent core.Extent
	Sprite core.Sprite
}

// spriteFile is the YAML structure of a sprite file.
type spriteFile struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Library holds loaded assets keyed by identifier.
type Library struct {
	fsys fs.FS

	mu     sync.RWMutex
	assets map[string]Asset
}

// NewLibrary creates an empty library reading sprite files from fsys.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:   fsys,
		assets: make(map[string]Asset),
	}
}

// LoadAll loads every sprite in the manifest and checks that all Required
// identifiers resolved. On error the library keeps whatever it had before.
func (l *Library) LoadAll(ctx context.Context, m Manifest) error {
	for _, id := range Required {
		if _, ok := m[id]; !ok {
			return fmt.Errorf("assets: manifest is missing %q", id)
		}
	}

	loaded := make(map[string]Asset, len(m))
	for _, id := range m.IDs() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("assets: load cancelled: %w", err)
		}

		a, err := l.loadFile(id, m[id])
		if err != nil {
			return err
		}
		loaded[id] = a
	}

	l.mu.Lock()
	for id, a := range loaded {
		l.assets[id] = a
	}
	l.mu.Unlock()
	return nil
}

func (l *Library) loadFile(id, path string) (Asset, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Asset{}, fmt.Errorf("assets: reading %s for %q: %w", path, id, err)
	}

	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Asset{}, fmt.Errorf("assets: parsing %s for %q: %w", path, id, err)
	}
	if len(sf.Rows) == 0 {
		return Asset{}, fmt.Errorf("assets: %s for %q has no rows", path, id)
	}

	color, ok := core.ParseColor(sf.Color)
	if !ok {
		return Asset{}, fmt.Errorf("assets: %s for %q: unknown color %q", path, id, sf.Color)
	}

	sprite := core.Sprite{Rows: sf.Rows, Color: color}
	if sprite.Cols() == 0 {
		return Asset{}, fmt.Errorf("assets: %s for %q has only empty rows", path, id)
	}

	return Asset{
		Name:   id,
		Extent: sprite.Extent(),
		Sprite: sprite,
	}, nil
}

// Asset returns the named asset. Asking for an identifier that was never
// loaded is a programming error and panics.
func (l *Library) Asset(name string) Asset {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.assets[name]
	if !ok {
		panic(fmt.Sprintf("assets: %q not loaded", name))
	}
	return a
}

// Has reports whether the named asset is loaded.
func (l *Library) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.assets[name]
	return ok
}

// Names returns the loaded identifiers, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.assets))
	for name := range l.assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDefault creates a library from the built-in sprites.
func LoadDefault(ctx context.Context) (*Library, error) {
	lib := NewLibrary(Sprites())
	if err := lib.LoadAll(ctx, DefaultManifest()); err != nil {
		return nil, err
	}
	return lib, nil
}
