package style

import "github.com/kelplayout/kelp/internal/core/geom"

// Clamp constrains size between min and max, each optional. Per spec.md
// §4.2 and §8 invariant 2, max takes precedence when min > max.
func Clamp(size float32, min, max *float32) float32 {
	if min != nil {
		size = geom.MaxF32(size, *min)
	}
	if max != nil {
		size = geom.MinF32(size, *max)
	}
	return size
}

// ClampOption applies Clamp to an optional size, passing nil through
// unchanged.
func ClampOption(size *float32, min, max *float32) *float32 {
	if size == nil {
		return nil
	}
	v := Clamp(*size, min, max)
	return &v
}

// ApplyAspectRatio derives the missing side of a Size<*f32> from the
// known side and ratio (width / height), per spec.md §4.2 "Aspect ratio":
// if exactly one side is definite, the other becomes definite via the
// ratio. Both sides present or absent are returned unchanged.
func ApplyAspectRatio(size geom.Size[*float32], ratio *float32) geom.Size[*float32] {
	if ratio == nil || *ratio == 0 {
		return size
	}
	switch {
	case size.Width != nil && size.Height == nil:
		h := *size.Width / *ratio
		size.Height = &h
	case size.Height != nil && size.Width == nil:
		w := *size.Height * *ratio
		size.Width = &w
	}
	return size
}

// ResolveSize resolves a Size<Dimension> against a parent Size<*f32>,
// width against parentSize.Width and height against parentSize.Height,
// per spec.md §4.2 "Percentage resolution".
func ResolveSize(dim geom.Size[Dimension], parent geom.Size[*float32]) geom.Size[*float32] {
	return geom.Size[*float32]{
		Width:  dim.Width.Resolve(parent.Width),
		Height: dim.Height.Resolve(parent.Height),
	}
}

// ResolveRect resolves a Rect<LengthPercentage> (padding/border) against
// a single parent size. Per spec.md §3, percentages in padding/margin
// always resolve against the containing block's inline (width) size on
// both axes, so every edge takes the same parentInlineSize.
func ResolveRect(r geom.Rect[LengthPercentage], parentInlineSize *float32) geom.Rect[float32] {
	return geom.Rect[float32]{
		Top:    r.Top.Resolve(parentInlineSize),
		Right:  r.Right.Resolve(parentInlineSize),
		Bottom: r.Bottom.Resolve(parentInlineSize),
		Left:   r.Left.Resolve(parentInlineSize),
	}
}

// ResolveRectAuto resolves a Rect<LengthPercentageAuto> (margin/inset)
// against the containing block's inline size, leaving auto edges nil.
func ResolveRectAuto(r geom.Rect[LengthPercentageAuto], parentInlineSize *float32) geom.Rect[*float32] {
	return geom.Rect[*float32]{
		Top:    r.Top.Resolve(parentInlineSize),
		Right:  r.Right.Resolve(parentInlineSize),
		Bottom: r.Bottom.Resolve(parentInlineSize),
		Left:   r.Left.Resolve(parentInlineSize),
	}
}

// ResolveRectAutoZero is ResolveRectAuto with auto/unresolvable edges
// treated as zero, for callers that have already handled auto-margin
// distribution separately.
func ResolveRectAutoZero(r geom.Rect[LengthPercentageAuto], parentInlineSize *float32) geom.Rect[float32] {
	return geom.Rect[float32]{
		Top:    r.Top.ResolveOrZero(parentInlineSize),
		Right:  r.Right.ResolveOrZero(parentInlineSize),
		Bottom: r.Bottom.ResolveOrZero(parentInlineSize),
		Left:   r.Left.ResolveOrZero(parentInlineSize),
	}
}
