package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// flexContainerIntrinsicSize implements spec.md §4.5's closing
// paragraph: min-content/max-content of a flex container is the sum
// (plus gap) of each item's own intrinsic size along the main axis, and
// the max of cross intrinsic sizes per line. Wrapping is ignored for the
// intrinsic query since a single-line sum is the standard definition of
// a flex container's content-based size.
func flexContainerIntrinsicSize(cfg Config, t Tree, node NodeID, mainAxis geom.Axis, mode style.AvailableSpace, gap geom.Size[float32]) geom.Size[float32] {
	crossAxis := mainAxis.Other()
	mainSum := float32(0)
	maxCross := float32(0)
	count := 0

	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		cs := t.Style(child)
		if cs.IsNone() || cs.Position == style.PositionAbsolute || cs.Position == style.PositionFixed {
			continue
		}
		margin := style.ResolveRectAutoZero(cs.Margin, nil)
		mainV := intrinsicMainSize(cfg, t, child, mainAxis, mode, geom.Size[*float32]{})
		mainSum += mainV + geom.SumAxis(margin, mainAxis)
		crossV := intrinsicMainSize(cfg, t, child, crossAxis, style.MaxContentSpace, geom.Size[*float32]{})
		maxCross = geom.MaxF32(maxCross, crossV+geom.SumAxis(margin, crossAxis))
		count++
	}
	if count > 1 {
		mainSum += geom.Get(gap, mainAxis) * float32(count-1)
	}
	return axisSize2(mainAxis, mainSum, maxCross)
}

// axisSize2 is axisSize's plain-float32 counterpart.
func axisSize2(mainAxis geom.Axis, main, cross float32) geom.Size[float32] {
	if mainAxis == geom.AxisHorizontal {
		return geom.Size[float32]{Width: main, Height: cross}
	}
	return geom.Size[float32]{Width: cross, Height: main}
}
