package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// ComputeRootLayout is the engine's public entry point (spec.md §4.1).
// It performs one synchronous, single-threaded pass over the subtree
// rooted at root and writes every reachable node's LayoutMut slot.
func ComputeRootLayout(t Tree, root NodeID, availableSpace geom.Size[AvailableSpace]) {
	ComputeRootLayoutWithConfig(t, root, availableSpace, DefaultConfig())
}

// ComputeRootLayoutWithConfig is ComputeRootLayout with explicit engine
// options (rounding mode, default position, diagnostics sink).
func ComputeRootLayoutWithConfig(t Tree, root NodeID, availableSpace geom.Size[AvailableSpace], cfg Config) {
	in := tree.LayoutInput{
		RunMode:        tree.PerformLayout,
		SizingMode:     tree.InherentSize,
		AvailableSpace: availableSpace,
	}
	out := performLayout(cfg, t, root, in)

	location := geom.ZeroPoint()
	if b, ok := t.(Boundable); ok {
		if pos, ok2 := b.Bounds(root); ok2 {
			location = pos
		}
	}

	res := t.LayoutMut(root)
	res.Location = location
	res.Size = out.Size
	res.ContentSize = out.ContentSize

	if r, ok := t.(Resizable); ok {
		r.SetNaturalSize(root, out.Size)
	}

	if cfg.Rounding == RoundingPixelSnap {
		roundSubtree(t, root)
	}
}

// performLayout dispatches on the node's display mode to the appropriate
// formatting context, or serves the result straight from cache when the
// input matches a stored entry at the current generation (spec.md §4.1
// "Dispatch", §4.8 "Cache").
func performLayout(cfg Config, t Tree, node NodeID, in tree.LayoutInput) tree.LayoutOutput {
	cache := t.Cache(node)
	if cached, ok := cache.Get(in); ok {
		return cached
	}

	s := t.Style(node)
	var out tree.LayoutOutput
	switch {
	case s.IsNone():
		out = tree.ZeroOutput()
	case t.ChildCount(node) == 0 && t.Measure(node) != nil:
		out = computeLeafLayout(cfg, t, node, s, in)
	case s.IsFlexContainer():
		out = computeFlexLayout(cfg, t, node, s, in)
	case s.IsGridContainer():
		out = computeGridLayout(cfg, t, node, s, in)
	default:
		out = computeBlockLayout(cfg, t, node, s, in)
	}

	if !style.IsFinite(out.Size.Width) || !style.IsFinite(out.Size.Height) {
		cfg.warn(Warning{Kind: WarnMeasureOutOfRange, Node: node, Detail: "non-finite size clamped to zero"})
		out.Size = geom.Size[float32]{
			Width:  finiteOrZero(out.Size.Width),
			Height: finiteOrZero(out.Size.Height),
		}
	}
	out.Size.Width = geom.MaxF32(0, out.Size.Width)
	out.Size.Height = geom.MaxF32(0, out.Size.Height)

	if in.RunMode == tree.PerformLayout {
		res := t.LayoutMut(node)
		res.Size = out.Size
		res.ContentSize = out.ContentSize
	}

	cache.Put(in, out)
	return out
}

func finiteOrZero(v float32) float32 {
	if style.IsFinite(v) {
		return v
	}
	return 0
}

// performChildLayout recurses into a child with a freshly derived
// LayoutInput and, on PerformLayout, records its location relative to
// the parent's content-box origin. If the host Tree implements Boundable,
// its explicit bounds override the formatting context's own placement;
// if it implements Resizable, the child's final size is also propagated
// to it, the same way the teacher's Draw loop pushes resolved bounds
// back to each shape after layout (instructions/auto_layout.go's
// Boundable/Resizable type switch).
func performChildLayout(cfg Config, t Tree, child NodeID, in tree.LayoutInput, location geom.Point[float32], order int) tree.LayoutOutput {
	out := performLayout(cfg, t, child, in)
	if in.RunMode == tree.PerformLayout {
		if b, ok := t.(Boundable); ok {
			if pos, ok2 := b.Bounds(child); ok2 {
				location = pos
			}
		}
		res := t.LayoutMut(child)
		res.Location = location
		res.Order = order
		if r, ok := t.(Resizable); ok {
			r.SetNaturalSize(child, out.Size)
		}
	}
	return out
}
