package geom

// Point is a 2D coordinate pair over any type T. A resolved LayoutResult
// location is Point[float32]; the engine never needs a Point of any other
// instantiation, but the type parameter keeps it consistent with Size/Rect.
type Point[T any] struct {
	X T
	Y T
}

// NewPoint constructs a Point from explicit x/y values.
func NewPoint[T any](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// ZeroPoint returns the zero-valued Point for float32, the most common
// instantiation (a node's location relative to its parent's border box).
func ZeroPoint() Point[float32] { return Point[float32]{} }
