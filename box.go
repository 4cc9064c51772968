package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// boxEdges holds a node's resolved padding, border and margin for the
// current layout pass. Percentages in padding/margin resolve against the
// containing block's inline size per spec.md §3, so both come from the
// same parentInline value regardless of which axis is being measured.
type boxEdges struct {
	padding geom.Rect[float32]
	border  geom.Rect[float32]
	margin  geom.Rect[float32]
}

func resolveBoxEdges(s *Style, parentInline *float32) boxEdges {
	return boxEdges{
		padding: style.ResolveRect(s.Padding, parentInline),
		border:  style.ResolveRect(s.Border, parentInline),
		margin:  style.ResolveRectAutoZero(s.Margin, parentInline),
	}
}

// paddingBorderSum returns the padding+border contribution along axis.
func (b boxEdges) paddingBorderSum(axis geom.Axis) float32 {
	return geom.SumAxis(b.padding, axis) + geom.SumAxis(b.border, axis)
}

func (b boxEdges) marginSum(axis geom.Axis) float32 {
	return geom.SumAxis(b.margin, axis)
}

// contentBoxSizeFromBorderBox converts a border-box size to the
// corresponding content-box size by subtracting padding and border.
func contentBoxSizeFromBorderBox(size geom.Size[float32], b boxEdges) geom.Size[float32] {
	return geom.Size[float32]{
		Width:  geom.MaxF32(0, size.Width-b.paddingBorderSum(geom.AxisHorizontal)),
		Height: geom.MaxF32(0, size.Height-b.paddingBorderSum(geom.AxisVertical)),
	}
}

// borderBoxSizeFromContentBox converts a content-box size to border-box
// by adding padding and border.
func borderBoxSizeFromContentBox(size geom.Size[float32], b boxEdges) geom.Size[float32] {
	return geom.Size[float32]{
		Width:  size.Width + b.paddingBorderSum(geom.AxisHorizontal),
		Height: size.Height + b.paddingBorderSum(geom.AxisVertical),
	}
}

// resolveMinMax resolves a node's min/max style against parent, returning
// plain *float32 pairs ready for style.Clamp.
func resolveMinMax(s *Style, parent geom.Size[*float32]) (min, max geom.Size[*float32]) {
	min = style.ResolveSize(s.MinSize, parent)
	max = style.ResolveSize(s.MaxSize, parent)
	return
}

// clampBorderBoxSize clamps a border-box size against the node's
// min/max style, converting the content-box-relative min/max when
// BoxSizing is ContentBox.
func clampBorderBoxSize(s *Style, size geom.Size[float32], b boxEdges, parent geom.Size[*float32]) geom.Size[float32] {
	min, max := resolveMinMax(s, parent)
	if s.BoxSizing == style.ContentBox {
		pbH := b.paddingBorderSum(geom.AxisHorizontal)
		pbV := b.paddingBorderSum(geom.AxisVertical)
		min = geom.Size[*float32]{Width: addMaybe(min.Width, pbH), Height: addMaybe(min.Height, pbV)}
		max = geom.Size[*float32]{Width: addMaybe(max.Width, pbH), Height: addMaybe(max.Height, pbV)}
	}
	return geom.Size[float32]{
		Width:  style.Clamp(size.Width, min.Width, max.Width),
		Height: style.Clamp(size.Height, min.Height, max.Height),
	}
}

func addMaybe(v *float32, delta float32) *float32 {
	if v == nil {
		return nil
	}
	r := *v + delta
	return &r
}

// knownDimsFromStyle resolves a node's own size style against its known
// dimensions and parent size: known dims always win, then style.Size,
// leaving auto unresolved for the formatting context to fill in.
func knownDimsFromStyle(s *Style, knownDims, parent geom.Size[*float32]) geom.Size[*float32] {
	out := knownDims
	styleSize := style.ResolveSize(s.Size, parent)
	if out.Width == nil {
		out.Width = styleSize.Width
	}
	if out.Height == nil {
		out.Height = styleSize.Height
	}
	out = style.ApplyAspectRatio(out, s.AspectRatio)
	return out
}
