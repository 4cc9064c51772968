package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// flexItem carries one flex child's resolved inputs and working state
// through the algorithm's several passes (spec.md §4.5). Main/cross
// refer to the container's FlexDirection-relative axes, not literal
// width/height.
type flexItem struct {
	node  NodeID
	style *Style
	order int

	mainAxis geom.Axis

	margin       geom.Rect[float32]
	marginAuto   geom.Rect[bool]
	paddingBorder geom.Rect[float32]

	flexBasis        float32
	hypotheticalMain float32 // flexBasis clamped to min/max
	minMain, maxMain *float32
	minCross, maxCross *float32

	target      float32 // current flexed main size, mutated by resolveFlexibleLengths
	frozen      bool
	violation   float32

	crossSize float32
	position  geom.Point[float32]
}

// outerMain returns v (a main-axis content/border-box size) plus the
// item's margin along axis.
func (it *flexItem) outerMain(v float32, axis geom.Axis) float32 {
	return v + geom.SumAxis(it.margin, axis)
}

// buildFlexItems gathers in-flow children into flexItem records with
// their flex-basis resolved per spec.md §4.5 step 3: from flex-basis, or
// the main-size style, or a content-size query when both are auto.
func buildFlexItems(cfg Config, t Tree, node NodeID, s *Style, mainAxis geom.Axis, contentBoxMain, contentBoxCross *float32, mode style.AvailableSpace) []*flexItem {
	var items []*flexItem
	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		cs := t.Style(child)
		if cs.IsNone() || cs.Position == style.PositionAbsolute || cs.Position == style.PositionFixed {
			continue
		}
		items = append(items, newFlexItem(cfg, t, child, cs, mainAxis, contentBoxMain, contentBoxCross, mode))
	}
	return items
}

func newFlexItem(cfg Config, t Tree, node NodeID, s *Style, mainAxis geom.Axis, parentMain, parentCross *float32, mode style.AvailableSpace) *flexItem {
	parent := axisSize(mainAxis, parentMain, parentCross)
	margin := style.ResolveRectAutoZero(s.Margin, parentMain)
	marginRaw := style.ResolveRectAuto(s.Margin, parentMain)
	marginAuto := geom.Rect[bool]{Top: marginRaw.Top == nil, Right: marginRaw.Right == nil, Bottom: marginRaw.Bottom == nil, Left: marginRaw.Left == nil}
	pb := resolveBoxEdges(s, parentMain)

	knownDims := knownDimsFromStyle(s, geom.Size[*float32]{}, parent)
	minSize, maxSize := resolveMinMax(s, parent)

	mainKnown := geom.Get(knownDims, mainAxis)
	minMain := geom.Get(minSize, mainAxis)
	maxMain := geom.Get(maxSize, mainAxis)
	minCross := geom.Get(minSize, mainAxis.Other())
	maxCross := geom.Get(maxSize, mainAxis.Other())

	basis := s.FlexBasis.Resolve(geom.Get(parent, mainAxis))
	switch {
	case basis == nil && mainKnown != nil:
		basis = mainKnown
	case basis == nil:
		v := flexItemContentMainSize(cfg, t, node, mainAxis, parent, mode)
		basis = &v
	}

	hMain := style.Clamp(*basis, minMain, maxMain)

	it := &flexItem{
		node:          node,
		style:         s,
		mainAxis:      mainAxis,
		margin:        margin,
		marginAuto:    marginAuto,
		paddingBorder: geom.Rect[float32]{Top: pb.padding.Top + pb.border.Top, Right: pb.padding.Right + pb.border.Right, Bottom: pb.padding.Bottom + pb.border.Bottom, Left: pb.padding.Left + pb.border.Left},
		flexBasis:     *basis,
		hypotheticalMain: hMain,
		minMain:       minMain,
		maxMain:       maxMain,
		minCross:      minCross,
		maxCross:      maxCross,
		target:        hMain,
	}
	return it
}

func axisSize(mainAxis geom.Axis, main, cross *float32) geom.Size[*float32] {
	if mainAxis == geom.AxisHorizontal {
		return geom.Size[*float32]{Width: main, Height: cross}
	}
	return geom.Size[*float32]{Width: cross, Height: main}
}

// flexItemContentMainSize queries the item's own intrinsic main-axis
// size via a ComputeSize pass, used when flex-basis and the main-size
// style are both auto (spec.md §4.5 step 3).
func flexItemContentMainSize(cfg Config, t Tree, node NodeID, mainAxis geom.Axis, parent geom.Size[*float32], mode style.AvailableSpace) float32 {
	return intrinsicMainSize(cfg, t, node, mainAxis, style.MaxContentSpace, parent)
}
