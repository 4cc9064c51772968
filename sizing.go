package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// contentSizeInput builds the LayoutInput for an intrinsic-size query:
// ComputeSize/ContentSize, no known dimensions, the given parent size
// for percentage resolution and available space (spec.md §9 "Two-pass
// intrinsic sizing").
func contentSizeInput(parent geom.Size[*float32], avail geom.Size[style.AvailableSpace]) tree.LayoutInput {
	return tree.LayoutInput{
		RunMode:        tree.ComputeSize,
		SizingMode:     tree.ContentSize,
		ParentSize:     parent,
		AvailableSpace: avail,
	}
}

// intrinsicMainSize queries a node's min-content or max-content size
// along axis, used by flex/grid item sizing.
func intrinsicMainSize(cfg Config, t Tree, node NodeID, axis geom.Axis, mode style.AvailableSpace, parent geom.Size[*float32]) float32 {
	avail := geom.Size[style.AvailableSpace]{Width: style.MaxContentSpace, Height: style.MaxContentSpace}
	if axis == geom.AxisHorizontal {
		avail.Width = mode
	} else {
		avail.Height = mode
	}
	out := performLayout(cfg, t, node, contentSizeInput(parent, avail))
	return geom.Get(out.Size, axis)
}
