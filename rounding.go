package kelp

import "github.com/kelplayout/kelp/internal/core/geom"

// roundSubtree walks every node reachable from root and snaps its
// recorded Location and Size to whole device pixels (spec.md §4.9
// "Rounding"). It runs as a pass separate from layout itself so the
// algorithm's intermediate math always operates on unrounded values,
// matching the teacher's own rasterize-after-layout split between
// instructions/auto_layout_compute.go and instructions/layer.go.
func roundSubtree(t Tree, root NodeID) {
	roundNode(t, root)
}

func roundNode(t Tree, node NodeID) {
	res := t.LayoutMut(node)
	res.Location = geom.Point[float32]{X: geom.RoundPixel(res.Location.X), Y: geom.RoundPixel(res.Location.Y)}
	res.Size = geom.Size[float32]{Width: geom.RoundPixel(res.Size.Width), Height: geom.RoundPixel(res.Size.Height)}
	res.ContentSize = geom.Size[float32]{Width: geom.RoundPixel(res.ContentSize.Width), Height: geom.RoundPixel(res.ContentSize.Height)}

	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		roundNode(t, t.ChildAt(node, i))
	}
}
