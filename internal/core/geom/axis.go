package geom

// Axis identifies one of the two physical axes a formatting context
// projects its main/cross (flex) or inline/block (grid) directions onto.
// This engine only supports horizontal top-to-bottom writing (spec.md §1
// Non-goals), so "inline" is always AxisHorizontal and "block" is always
// AxisVertical.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Other returns the axis perpendicular to a.
func (a Axis) Other() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// Get reads the component of s that lies along a. It is generic so the
// same accessor serves resolved pixel sizes (Size[float32]), optional
// known dimensions (Size[*float32]), available-space pairs
// (Size[style.AvailableSpace]), and style-space sizes (Size[Dimension])
// without a family of type-specific accessors.
func Get[T any](s Size[T], a Axis) T {
	if a == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the component along a replaced by v.
func Set[T any](s Size[T], a Axis, v T) Size[T] {
	if a == AxisHorizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}
