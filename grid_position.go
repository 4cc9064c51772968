package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// positionGridItem sizes and places one grid item within its (possibly
// spanned) cell, performing a full child layout pass. Per spec.md §4.6
// phase 4, an item without an intrinsic size constraint stretches to fill
// its cell on both axes unless justify-self/align-self says otherwise.
// Grounded on the cell positioning block in
// other_examples/424c6c80_SCKelemen-layout__grid.go.go, replacing its
// float64/aspect-ratio-special-case branch with the shared
// ApplyAspectRatio/Clamp helpers used elsewhere in this engine.
func positionGridItem(cfg Config, t Tree, it *gridItem, container *Style, colSizes, colOffsets, rowSizes, rowOffsets []float32, order int) {
	x := colOffsets[it.colStart]
	y := rowOffsets[it.rowStart]
	cellWidth := cellSpan(colSizes, 0, it.colStart, it.colEnd)
	cellHeight := cellSpan(rowSizes, 0, it.rowStart, it.rowEnd)

	margin := style.ResolveRectAutoZero(it.s.Margin, &cellWidth)
	maxWidth := geom.MaxF32(0, cellWidth-margin.Left-margin.Right)
	maxHeight := geom.MaxF32(0, cellHeight-margin.Top-margin.Bottom)

	justify := it.s.JustifySelf.Resolve(container.JustifyItems)
	align := it.s.AlignSelf.Resolve(container.AlignItems)

	knownDims := knownDimsFromStyle(it.s, geom.Size[*float32]{}, geom.Size[*float32]{Width: &maxWidth, Height: &maxHeight})
	width := knownDims.Width
	if width == nil && justify == style.AlignStretch {
		width = &maxWidth
	}
	height := knownDims.Height
	if height == nil && align == style.AlignStretch {
		height = &maxHeight
	}

	childIn := tree.LayoutInput{
		RunMode:    tree.PerformLayout,
		SizingMode: tree.InherentSize,
		KnownDims:  geom.Size[*float32]{Width: width, Height: height},
		ParentSize: geom.Size[*float32]{Width: &cellWidth, Height: &cellHeight},
		AvailableSpace: geom.Size[style.AvailableSpace]{
			Width:  availSpaceFor(width, maxWidth),
			Height: availSpaceFor(height, maxHeight),
		},
	}
	out := performLayout(cfg, t, it.node, childIn)

	offsetX := selfOffset(justify, maxWidth, out.Size.Width)
	offsetY := selfOffset(align, maxHeight, out.Size.Height)

	res := t.LayoutMut(it.node)
	res.Location = geom.Point[float32]{X: x + margin.Left + offsetX, Y: y + margin.Top + offsetY}
	res.Size = out.Size
	res.ContentSize = out.ContentSize
	res.Order = order
}

func selfOffset(align style.AlignItems, cell, item float32) float32 {
	switch align {
	case style.AlignEnd:
		return cell - item
	case style.AlignCenter:
		return (cell - item) / 2
	default:
		return 0
	}
}
