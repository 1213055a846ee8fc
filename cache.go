package xfont

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/xfont/atom"
	"github.com/gogpu/xfont/backend"
	"github.com/gogpu/xfont/internal/cache"
	"github.com/gogpu/xfont/xlfd"
)

// DefaultCacheCapacity is the per-shard capacity used when NewCache is given
// a non-positive capacity.
const DefaultCacheCapacity = cache.DefaultCapacity

// Cache loads fonts by name and binds them to client font ids.
//
// Fonts are shared by name: opening the same name twice builds the font once.
// Name sharing is LRU-bounded, but a font bound to an id stays alive until
// CloseFont regardless of eviction. Cache is safe for concurrent use.
type Cache struct {
	backend backend.Backend
	atoms   atom.Manager
	opts    []BuildOption

	fonts *cache.Sharded[string, *Font]

	mu      sync.RWMutex
	open    map[uint32]*Font
	catalog []string
}

// NewCache creates a font cache building fonts with b. Every font built by
// the cache shares one atom table: the one passed WithAtoms, or a new one.
func NewCache(b backend.Backend, capacity int, opts ...BuildOption) *Cache {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.atoms == nil {
		o.atoms = atom.NewTable()
	}

	c := &Cache{
		backend: b,
		atoms:   o.atoms,
		opts:    append(slices.Clone(opts), WithAtoms(o.atoms)),
		fonts:   cache.NewSharded[string, *Font](capacity, cache.StringHasher),
		open:    make(map[uint32]*Font),
		catalog: []string{xlfd.DefaultName, xlfd.FixedName},
	}
	c.fonts.OnEvict(func(name string, _ *Font) {
		Logger().Debug("xfont: font evicted from cache", "name", name)
	})
	return c
}

// Atoms returns the atom table fonts are built with.
func (c *Cache) Atoms() atom.Manager {
	return c.atoms
}

// Load returns the font for name, building it on first use. The name becomes
// the font's declared name, so spellings that differ only in case are cached
// as separate fonts that each report the name they were opened with.
func (c *Cache) Load(name string) (*Font, error) {
	return c.fonts.GetOrCreate(name, func() (*Font, error) {
		spec, err := xlfd.Parse(name)
		if err != nil {
			return nil, err
		}
		opts := append(slices.Clone(c.opts), WithDeclaredName(name))
		return Build(c.backend, spec, opts...)
	})
}

// OpenFont loads name and binds it to id (OpenFont request).
func (c *Cache) OpenFont(id uint32, name string) (*Font, error) {
	c.mu.RLock()
	_, used := c.open[id]
	c.mu.RUnlock()
	if used {
		return nil, fmt.Errorf("%w: %#x", ErrFontIDInUse, id)
	}

	f, err := c.Load(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, used := c.open[id]; used {
		return nil, fmt.Errorf("%w: %#x", ErrFontIDInUse, id)
	}
	c.open[id] = f

	Logger().Info("xfont: font opened", "id", id, "name", name)
	return f, nil
}

// Font returns the font bound to id.
func (c *Cache) Font(id uint32) (*Font, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.open[id]
	return f, ok
}

// CloseFont unbinds id (CloseFont request). It reports whether id was bound.
func (c *Cache) CloseFont(id uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.open[id]; !ok {
		return false
	}
	delete(c.open, id)
	Logger().Info("xfont: font closed", "id", id)
	return true
}

// Close unbinds every id and drops all cached fonts.
func (c *Cache) Close() {
	c.mu.Lock()
	c.open = make(map[uint32]*Font)
	c.mu.Unlock()

	st := c.fonts.Stats()
	Logger().Debug("xfont: font cache closed",
		"fonts", st.Len,
		"hits", st.Hits,
		"misses", st.Misses,
		"evictions", st.Evictions,
	)
	c.fonts.Clear()
}

// AddNames adds names to the catalog ListFonts searches. The aliases are
// always listed.
func (c *Cache) AddNames(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range names {
		if !slices.Contains(c.catalog, n) {
			c.catalog = append(c.catalog, n)
		}
	}
}

// ListFonts returns up to limit catalog names matching pattern (ListFonts
// request). limit <= 0 means no limit.
func (c *Cache) ListFonts(pattern string, limit int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return xlfd.Filter(pattern, c.catalog, limit)
}
