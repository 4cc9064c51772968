package kelp

import "github.com/kelplayout/kelp/internal/core/geom"

// NodeID identifies a node within a Tree. It is opaque to the engine and
// stable for the duration of a layout pass (spec.md §4.1).
type NodeID int

// MeasureFunc is the leaf measurement callback a caller supplies for
// nodes that have no children (text, images). It must be pure and
// idempotent for a given style generation (spec.md §4.3); its result is
// cached exactly like a formatting context's own output.
type MeasureFunc func(knownDims geom.Size[*float32], availableSpace geom.Size[AvailableSpace]) geom.Size[float32]

// LayoutResult is the per-node output of a layout pass: location
// relative to the parent's border-box origin, the border-box size, the
// content extent (for overflow), and the resolved box-model edges
// (spec.md §3 "Layout result").
type LayoutResult struct {
	Order         int
	Location      geom.Point[float32]
	Size          geom.Size[float32]
	ContentSize   geom.Size[float32]
	ScrollbarSize geom.Size[float32]
	Padding       geom.Rect[float32]
	Border        geom.Rect[float32]
	Margin        geom.Rect[float32]
}

// Tree is the capability set the engine needs from its host: read-only
// child access and style lookup, a mutable per-node cache handle, a
// mutable layout-result slot, and an optional leaf measure callback
// (spec.md §4.1). A caller's own document/DOM tree implements this
// directly; the engine never owns node storage.
type Tree interface {
	ChildCount(node NodeID) int
	ChildAt(node NodeID, i int) NodeID
	Style(node NodeID) *Style
	Cache(node NodeID) *Cache
	LayoutMut(node NodeID) *LayoutResult

	// Measure returns the leaf's measure callback, or nil if the node has
	// one computed from children instead (the common case).
	Measure(node NodeID) MeasureFunc
}

// Resizable is an optional capability a Tree may additionally implement to
// be notified of a node's final computed size as soon as it is placed,
// mirroring the teacher's own optional-capability pattern
// (instructions/auto_layout_node.go's Resizable, propagated by
// instructions/auto_layout.go's Draw loop). The engine checks for it with
// a type assertion in performChildLayout/ComputeRootLayoutWithConfig and
// calls SetNaturalSize after writing the node's LayoutResult; a Tree that
// doesn't implement it is unaffected. Grid items and absolutely
// positioned children are placed without going through performChildLayout,
// so SetNaturalSize is not called for them.
type Resizable interface {
	SetNaturalSize(node NodeID, size geom.Size[float32])
}

// Boundable is an optional capability exposing a node's explicit position
// override, independent of the style-driven box model — the reverse
// direction of the teacher's own Boundable (which received resolved
// bounds rather than supplying them). performChildLayout and
// ComputeRootLayoutWithConfig consult it before writing a node's
// LayoutResult.Location; when Bounds reports ok, it replaces the position
// the formatting context computed. Absent implementers are positioned
// purely from Style. Grid items and absolutely positioned children are
// not consulted.
type Boundable interface {
	Bounds(node NodeID) (geom.Point[float32], bool)
}
