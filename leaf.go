package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// computeLeafLayout sizes a childless node with a caller-supplied Measure
// callback (spec.md §4.3). Absent a callback, a leaf with no children has
// already been routed to computeBlockLayout by the dispatch in
// engine.go, which degenerates to a zero-size content box.
func computeLeafLayout(cfg Config, t Tree, node NodeID, s *Style, in tree.LayoutInput) tree.LayoutOutput {
	parentInline := in.ParentSize.Width
	edges := resolveBoxEdges(s, parentInline)

	knownDims := knownDimsFromStyle(s, in.KnownDims, in.ParentSize)
	pb := geom.Size[float32]{
		Width:  edges.paddingBorderSum(geom.AxisHorizontal),
		Height: edges.paddingBorderSum(geom.AxisVertical),
	}

	contentKnown := geom.Size[*float32]{
		Width:  subMaybe(knownDims.Width, pb.Width),
		Height: subMaybe(knownDims.Height, pb.Height),
	}
	contentAvailable := geom.Size[style.AvailableSpace]{
		Width:  in.AvailableSpace.Width.MaybeSub(pb.Width),
		Height: in.AvailableSpace.Height.MaybeSub(pb.Height),
	}

	measure := t.Measure(node)
	var content geom.Size[float32]
	if measure != nil {
		content = measure(contentKnown, contentAvailable)
		if !style.IsFinite(content.Width) || !style.IsFinite(content.Height) || content.Width < 0 || content.Height < 0 {
			cfg.warn(Warning{Kind: WarnMeasureOutOfRange, Node: node, Detail: "measure callback returned a negative or non-finite size, clamped to zero"})
		}
	}
	content.Width = geom.MaxF32(0, finiteOrZero(content.Width))
	content.Height = geom.MaxF32(0, finiteOrZero(content.Height))

	if knownDims.Width != nil {
		content.Width = geom.MaxF32(0, *knownDims.Width-pb.Width)
	}
	if knownDims.Height != nil {
		content.Height = geom.MaxF32(0, *knownDims.Height-pb.Height)
	}

	borderBox := borderBoxSizeFromContentBox(content, edges)
	borderBox = clampBorderBoxSize(s, borderBox, edges, in.ParentSize)

	if in.RunMode == tree.PerformLayout {
		res := t.LayoutMut(node)
		res.Padding = edges.padding
		res.Border = edges.border
		res.Margin = edges.margin
	}

	return tree.LayoutOutput{
		Size:         borderBox,
		ContentSize:  content,
		TopMargin:    tree.CollapsibleMargin{Value: edges.margin.Top},
		BottomMargin: tree.CollapsibleMargin{Value: edges.margin.Bottom},
	}
}

func subMaybe(v *float32, delta float32) *float32 {
	if v == nil {
		return nil
	}
	r := geom.MaxF32(0, *v-delta)
	return &r
}
