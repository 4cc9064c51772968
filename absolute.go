package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// layoutAbsoluteChildren lays out node's absolutely/fixed positioned
// children against the just-finalized containing block (spec.md §4.4
// step 5, §4.7). The containing block is this node's padding box: the
// nearest-positioned-ancestor rule collapses to a single level here,
// since the engine threads no positioned-ancestor chain across
// recursion levels.
func layoutAbsoluteChildren(cfg Config, t Tree, node NodeID, in tree.LayoutInput, borderBox geom.Size[float32], edges boxEdges, startOrder int) {
	containing := geom.Size[float32]{
		Width:  geom.MaxF32(0, borderBox.Width-edges.border.Left-edges.border.Right),
		Height: geom.MaxF32(0, borderBox.Height-edges.border.Top-edges.border.Bottom),
	}

	order := startOrder
	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		childStyle := t.Style(child)
		if childStyle.Position != style.PositionAbsolute && childStyle.Position != style.PositionFixed {
			continue
		}
		layoutAbsoluteChild(cfg, t, child, childStyle, containing, order)
		order++
	}
}

func layoutAbsoluteChild(cfg Config, t Tree, child NodeID, s *Style, containing geom.Size[float32], order int) {
	left := s.Inset.Left.Resolve(&containing.Width)
	right := s.Inset.Right.Resolve(&containing.Width)
	top := s.Inset.Top.Resolve(&containing.Height)
	bottom := s.Inset.Bottom.Resolve(&containing.Height)

	knownDims := knownDimsFromStyle(s, geom.Size[*float32]{}, geom.Size[*float32]{Width: &containing.Width, Height: &containing.Height})

	width := knownDims.Width
	if width == nil && left != nil && right != nil {
		v := geom.MaxF32(0, containing.Width-*left-*right)
		width = &v
	}
	height := knownDims.Height
	if height == nil && top != nil && bottom != nil {
		v := geom.MaxF32(0, containing.Height-*top-*bottom)
		height = &v
	}

	childIn := tree.LayoutInput{
		RunMode:    tree.PerformLayout,
		SizingMode: tree.InherentSize,
		KnownDims:  geom.Size[*float32]{Width: width, Height: height},
		ParentSize: geom.Size[*float32]{Width: &containing.Width, Height: &containing.Height},
		AvailableSpace: geom.Size[style.AvailableSpace]{
			Width:  availSpaceFor(width, containing.Width),
			Height: availSpaceFor(height, containing.Height),
		},
	}
	out := performLayout(cfg, t, child, childIn)

	x := resolveAbsoluteAxis(left, right, out.Size.Width, containing.Width)
	y := resolveAbsoluteAxis(top, bottom, out.Size.Height, containing.Height)

	res := t.LayoutMut(child)
	res.Location = geom.Point[float32]{X: x, Y: y}
	res.Size = out.Size
	res.ContentSize = out.ContentSize
	res.Order = order
}

func availSpaceFor(known *float32, fallback float32) style.AvailableSpace {
	if known != nil {
		return style.Definite(*known)
	}
	return style.Definite(fallback)
}

// resolveAbsoluteAxis picks the child's offset along one axis from its
// resolved start/end insets, preferring the start inset when both
// conflict (writing-mode order, per spec.md §4.7).
func resolveAbsoluteAxis(start, end *float32, size, containing float32) float32 {
	switch {
	case start != nil:
		return *start
	case end != nil:
		return geom.MaxF32(0, containing-*end-size)
	default:
		return 0
	}
}
