package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// computeBlockLayout implements spec.md §4.4: vertical stacking of
// in-flow children with margin collapsing, deferred absolute/fixed
// children, and auto block-size derived from accumulated content
// extent. Margin collapsing is tracked as a single running
// CollapsibleMargin threaded through the child loop rather than a
// separate collapsing graph, per SPEC_FULL.md §4.4 — the block
// equivalent of the teacher's placeLines running mainCursor/crossOffset
// variables (instructions/auto_layout_place.go).
func computeBlockLayout(cfg Config, t Tree, node NodeID, s *Style, in tree.LayoutInput) tree.LayoutOutput {
	parentInline := in.ParentSize.Width
	edges := resolveBoxEdges(s, parentInline)
	pbH := edges.paddingBorderSum(geom.AxisHorizontal)
	pbV := edges.paddingBorderSum(geom.AxisVertical)

	knownDims := knownDimsFromStyle(s, in.KnownDims, in.ParentSize)

	contentWidth := resolveBlockContentWidth(cfg, t, node, s, in, knownDims, edges, pbH)
	ownHeightKnown := knownDims.Height

	childParentSize := geom.Size[*float32]{Width: &contentWidth, Height: ownHeightKnown}

	var childAvailHeight style.AvailableSpace
	if ownHeightKnown != nil {
		childAvailHeight = style.Definite(geom.MaxF32(0, *ownHeightKnown-pbV))
	} else {
		childAvailHeight = style.MaxContentSpace
	}

	// A container's own top margin collapses with its first in-flow
	// child's top margin when nothing (top border/padding) separates
	// them, and its own bottom margin collapses with the last in-flow
	// child's bottom margin the same way provided its own height is
	// auto (CSS 2.1 §8.3.1 steps 2c & 4). Collapsing through either edge
	// removes that space from this container's content box entirely: it
	// reappears outside the container, as this function's own
	// TopMargin/BottomMargin returned to whichever caller positions
	// this container among its own siblings.
	collapseTopThroughContainer := edges.padding.Top+edges.border.Top == 0
	collapseBottomThroughContainer := ownHeightKnown == nil && edges.padding.Bottom+edges.border.Bottom == 0

	containerTopMargin := tree.CollapsibleMargin{Value: edges.margin.Top}
	containerBottomMargin := tree.CollapsibleMargin{Value: edges.margin.Bottom}

	yCursor := float32(0)
	maxChildWidth := float32(0)
	var pending tree.CollapsibleMargin
	order := 0
	firstInFlow := true
	hasInFlowChild := false
	var lastOut tree.LayoutOutput

	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		childStyle := t.Style(child)
		if childStyle.IsNone() {
			performChildLayout(cfg, t, child, tree.LayoutInput{RunMode: in.RunMode}, geom.ZeroPoint(), order)
			continue
		}
		if childStyle.Position == style.PositionAbsolute || childStyle.Position == style.PositionFixed {
			continue // deferred to step 5, below
		}

		childInlineMargin := style.ResolveRectAutoZero(childStyle.Margin, &contentWidth)

		var effective tree.CollapsibleMargin
		topCollapsesThrough := firstInFlow && collapseTopThroughContainer
		if topCollapsesThrough {
			effective = tree.CollapsibleMargin{}
		} else {
			effective = pending.Collapse(tree.CollapsibleMargin{Value: childInlineMargin.Top})
		}
		yCursor += effective.Value

		// An auto-width child fills the content box's inline size.
		childAvailWidth := geom.MaxF32(0, contentWidth-childInlineMargin.Left-childInlineMargin.Right)
		var childKnown geom.Size[*float32]
		if childStyle.Size.Width.IsAuto() {
			childKnown.Width = &childAvailWidth
		}
		childIn := tree.LayoutInput{
			RunMode:        in.RunMode,
			SizingMode:     tree.InherentSize,
			KnownDims:      childKnown,
			ParentSize:     childParentSize,
			AvailableSpace: geom.Size[style.AvailableSpace]{Width: style.Definite(childAvailWidth), Height: childAvailHeight},
		}
		loc := geom.Point[float32]{X: childInlineMargin.Left, Y: yCursor}
		out := performChildLayout(cfg, t, child, childIn, loc, order)
		order++

		if topCollapsesThrough {
			containerTopMargin = containerTopMargin.Collapse(out.TopMargin)
		}

		yCursor += out.Size.Height
		maxChildWidth = geom.MaxF32(maxChildWidth, out.Size.Width+childInlineMargin.Left+childInlineMargin.Right)
		pending = out.BottomMargin

		firstInFlow = false
		hasInFlowChild = true
		lastOut = out
	}

	if hasInFlowChild {
		if collapseBottomThroughContainer {
			containerBottomMargin = containerBottomMargin.Collapse(lastOut.BottomMargin)
		} else {
			yCursor += lastOut.BottomMargin.Value
		}
	}

	marginsCanCollapseThrough := !hasInFlowChild && collapseTopThroughContainer && collapseBottomThroughContainer

	contentHeight := yCursor
	if ownHeightKnown != nil {
		contentHeight = geom.MaxF32(0, *ownHeightKnown-pbV)
	}

	borderBox := borderBoxSizeFromContentBox(geom.Size[float32]{Width: contentWidth, Height: contentHeight}, edges)
	borderBox = clampBorderBoxSize(s, borderBox, edges, in.ParentSize)

	if in.RunMode == tree.PerformLayout {
		layoutAbsoluteChildren(cfg, t, node, in, borderBox, edges, order)

		res := t.LayoutMut(node)
		res.Padding = edges.padding
		res.Border = edges.border
		res.Margin = edges.margin
	}

	return tree.LayoutOutput{
		Size:                      borderBox,
		ContentSize:               geom.Size[float32]{Width: geom.MaxF32(contentWidth, maxChildWidth), Height: geom.MaxF32(contentHeight, yCursor)},
		TopMargin:                 containerTopMargin,
		BottomMargin:              containerBottomMargin,
		MarginsCanCollapseThrough: marginsCanCollapseThrough,
	}
}

// resolveBlockContentWidth resolves the container's content-box inline
// size from known dims, style, or available space, falling back to a
// shrink-to-fit intrinsic query over children when none of those is
// definite (spec.md §4.4 step 1).
func resolveBlockContentWidth(cfg Config, t Tree, node NodeID, s *Style, in tree.LayoutInput, knownDims geom.Size[*float32], edges boxEdges, pbH float32) float32 {
	if knownDims.Width != nil {
		return geom.MaxF32(0, *knownDims.Width-pbH)
	}
	if avail, ok := in.AvailableSpace.Width.Value(); ok {
		return geom.MaxF32(0, avail-pbH-edges.marginSum(geom.AxisHorizontal))
	}
	return blockIntrinsicContentWidth(cfg, t, node, in.AvailableSpace.Width)
}

// blockIntrinsicContentWidth is the block formatting context's
// shrink-to-fit width: the max of each in-flow child's own intrinsic
// width (spec.md §4.4/§9 "Two-pass intrinsic sizing").
func blockIntrinsicContentWidth(cfg Config, t Tree, node NodeID, mode style.AvailableSpace) float32 {
	n := t.ChildCount(node)
	width := float32(0)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		childStyle := t.Style(child)
		if childStyle.IsNone() || childStyle.Position == style.PositionAbsolute || childStyle.Position == style.PositionFixed {
			continue
		}
		in := tree.LayoutInput{
			RunMode:        tree.ComputeSize,
			SizingMode:     tree.ContentSize,
			AvailableSpace: geom.Size[style.AvailableSpace]{Width: mode, Height: style.MaxContentSpace},
		}
		out := performLayout(cfg, t, child, in)
		margin := style.ResolveRectAutoZero(childStyle.Margin, nil)
		width = geom.MaxF32(width, out.Size.Width+margin.Left+margin.Right)
	}
	return width
}
