package tree

import "github.com/kelplayout/kelp/internal/style"

// cacheSlots is the fixed number of entries kept per node, chosen from
// the range spec.md §9 "Caching strategy" recommends (four to eight).
// Four slots cover the common query shapes: ComputeSize(MinContent),
// ComputeSize(MaxContent), ComputeSize(definite), and the final
// PerformLayout call.
const cacheSlots = 4

type cacheEntry struct {
	occupied   bool
	generation uint64
	key        LayoutInput
	value      LayoutOutput
}

// Cache is a per-node fixed-capacity memoization table keyed by the full
// LayoutInput, generalizing the eviction discipline of the teacher's
// internal/render/font_lru.go (a capacity-bounded store that drops the
// least recently used entry) to a small inline array instead of a
// container/list ring, since a handful of slots never justifies a linked
// list's bookkeeping.
//
// A style mutation bumps the owning node's generation counter instead of
// walking the slots; stale entries are left in place and simply never
// match again, exactly the "mismatched generations are treated as misses
// and overwritten" rule in spec.md §9.
type Cache struct {
	generation uint64
	slots      [cacheSlots]cacheEntry
	clock      uint64
	lastUsed   [cacheSlots]uint64
}

// Generation returns the cache's current style-generation counter.
func (c *Cache) Generation() uint64 { return c.generation }

// Invalidate bumps the generation counter, making every existing entry a
// miss without touching the slot contents (cheaper than zeroing them,
// and the zero generation never recurs so no ABA hazard exists).
func (c *Cache) Invalidate() { c.generation++ }

// Get returns the cached output for key if a slot holds it at the
// current generation, else (_, false).
func (c *Cache) Get(key LayoutInput) (LayoutOutput, bool) {
	for i := range c.slots {
		s := &c.slots[i]
		if !s.occupied || s.generation != c.generation {
			continue
		}
		if inputsEqual(s.key, key) {
			c.clock++
			c.lastUsed[i] = c.clock
			return s.value, true
		}
	}
	return LayoutOutput{}, false
}

// Put stores value under key, evicting the least-recently-used slot (by
// the cache's own logical clock, not wall time) when all slots are
// occupied at the current generation.
func (c *Cache) Put(key LayoutInput, value LayoutOutput) {
	slot := -1
	for i := range c.slots {
		if !c.slots[i].occupied || c.slots[i].generation != c.generation {
			slot = i
			break
		}
	}
	if slot == -1 {
		slot = c.leastRecentlyUsedSlot()
	}
	c.clock++
	c.slots[slot] = cacheEntry{occupied: true, generation: c.generation, key: key, value: value}
	c.lastUsed[slot] = c.clock
}

func (c *Cache) leastRecentlyUsedSlot() int {
	oldest := 0
	for i := 1; i < cacheSlots; i++ {
		if c.lastUsed[i] < c.lastUsed[oldest] {
			oldest = i
		}
	}
	return oldest
}

// inputsEqual compares two LayoutInputs for cache-key purposes. Pointer
// fields (KnownDims, ParentSize) compare by pointee value since two
// LayoutInputs built for the same query carry distinct *float32s holding
// the same number.
func inputsEqual(a, b LayoutInput) bool {
	if a.RunMode != b.RunMode || a.SizingMode != b.SizingMode {
		return false
	}
	if !optFloatEqual(a.KnownDims.Width, b.KnownDims.Width) || !optFloatEqual(a.KnownDims.Height, b.KnownDims.Height) {
		return false
	}
	if !optFloatEqual(a.ParentSize.Width, b.ParentSize.Width) || !optFloatEqual(a.ParentSize.Height, b.ParentSize.Height) {
		return false
	}
	if !availableSpaceEqual(a.AvailableSpace.Width, b.AvailableSpace.Width) {
		return false
	}
	if !availableSpaceEqual(a.AvailableSpace.Height, b.AvailableSpace.Height) {
		return false
	}
	return true
}

func optFloatEqual(a, b *float32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func availableSpaceEqual(a, b style.AvailableSpace) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	if aok != bok {
		return false
	}
	if aok {
		return av == bv
	}
	return a.IsMinContent() == b.IsMinContent() && a.IsMaxContent() == b.IsMaxContent()
}
