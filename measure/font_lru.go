package measure

import (
	"container/list"
	"sync"

	"golang.org/x/image/font"
)

// lruEntry is a single cached font.Face keyed by its cache key.
type lruEntry struct {
	key  string
	face font.Face
}

// fontLRU is a thread-safe least-recently-used cache of font.Face values,
// adapted unchanged from the teacher's render.fontLRU (internal/render/
// font_lru.go) — the doubly-linked-list eviction strategy fits an
// unbounded set of (font, size, dpi) keys better than the fixed-array LRU
// used by the per-node layout result cache (internal/tree/cache.go).
type fontLRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func newFontLRU(capacity int) *fontLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &fontLRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *fontLRU) get(key string) (font.Face, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*lruEntry).face, true
	}
	return nil, false
}

func (c *fontLRU) put(key string, face font.Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		el.Value.(*lruEntry).face = face
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			ent := oldest.Value.(*lruEntry)
			if closer, ok := ent.face.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
			delete(c.items, ent.key)
			c.order.Remove(oldest)
		}
	}

	el := c.order.PushBack(&lruEntry{key: key, face: face})
	c.items[key] = el
}
