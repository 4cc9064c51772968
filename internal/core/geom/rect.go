package geom

// Rect holds the four box-model edges of a node: padding, border, margin,
// or an absolutely-positioned item's inset. Field order matches CSS's own
// top/right/bottom/left (clockwise from top), the same order the teacher
// library used for its raw [4]int padding/margin arrays
// (instructions/auto_layout_styles.go ContainerStyle.Padding, ItemStyle.Margin).
type Rect[T any] struct {
	Top    T
	Right  T
	Bottom T
	Left   T
}

// NewRect constructs a Rect from its four edges.
func NewRect[T any](top, right, bottom, left T) Rect[T] {
	return Rect[T]{Top: top, Right: right, Bottom: bottom, Left: left}
}

// MapRect applies f to all four edges, potentially changing the type.
func MapRect[T, U any](r Rect[T], f func(T) U) Rect[U] {
	return Rect[U]{Top: f(r.Top), Right: f(r.Right), Bottom: f(r.Bottom), Left: f(r.Left)}
}

// HorizontalSum returns Left + Right for a resolved-pixel rect.
func HorizontalSum(r Rect[float32]) float32 { return r.Left + r.Right }

// VerticalSum returns Top + Bottom for a resolved-pixel rect.
func VerticalSum(r Rect[float32]) float32 { return r.Top + r.Bottom }

// SumAxis returns the two edges summed along the given axis: horizontal
// (left+right) for AxisHorizontal, vertical (top+bottom) for AxisVertical.
func SumAxis(r Rect[float32], axis Axis) float32 {
	if axis == AxisHorizontal {
		return r.Left + r.Right
	}
	return r.Top + r.Bottom
}

// StartAxis returns the leading edge along axis: Left for horizontal, Top
// for vertical.
func StartAxis(r Rect[float32], axis Axis) float32 {
	if axis == AxisHorizontal {
		return r.Left
	}
	return r.Top
}

// EndAxis returns the trailing edge along axis: Right for horizontal,
// Bottom for vertical.
func EndAxis(r Rect[float32], axis Axis) float32 {
	if axis == AxisHorizontal {
		return r.Right
	}
	return r.Bottom
}
