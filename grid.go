package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// computeGridLayout implements spec.md §4.6: explicit/auto track lists,
// item placement (explicit, auto-flow row/column, dense), intrinsic track
// sizing, fr distribution, and per-item positioning with justify/align
// self and stretch.
func computeGridLayout(cfg Config, t Tree, node NodeID, s *Style, in tree.LayoutInput) tree.LayoutOutput {
	parentInline := in.ParentSize.Width
	edges := resolveBoxEdges(s, parentInline)
	pbH := edges.paddingBorderSum(geom.AxisHorizontal)
	pbV := edges.paddingBorderSum(geom.AxisVertical)

	knownDims := knownDimsFromStyle(s, in.KnownDims, in.ParentSize)
	contentWidth, widthDefinite := axisContentSize(knownDims.Width, in.AvailableSpace.Width, pbH)
	contentHeight, heightDefinite := axisContentSize(knownDims.Height, in.AvailableSpace.Height, pbV)

	colGap := s.Gap.Width.Resolve(parentInline)
	rowGap := s.Gap.Height.Resolve(parentInline)

	explicitCols := s.GridTemplateColumns
	explicitRows := s.GridTemplateRows
	if len(explicitCols) == 0 {
		explicitCols = []style.TrackSizingFunction{style.AutoTrack()}
	}
	if len(explicitRows) == 0 {
		explicitRows = []style.TrackSizingFunction{style.AutoTrack()}
	}

	items, colCount, rowCount := placeGridItems(t, node, s, len(explicitCols), len(explicitRows))

	cols := expandTracks(explicitCols, s.GridAutoColumns, colCount)
	rows := expandTracks(explicitRows, s.GridAutoRows, rowCount)

	var colAvail, rowAvail *float32
	if widthDefinite {
		v := contentWidth
		colAvail = &v
	}
	if heightDefinite {
		v := contentHeight
		rowAvail = &v
	}

	colTracks := sizeTracks(cols, colAvail, colGap, func(i int, mode style.AvailableSpace) float32 {
		return maxItemContribution(cfg, t, items, geom.AxisHorizontal, i, mode)
	})
	colSizes := trackSizes(colTracks)

	rowTracks := sizeTracks(rows, rowAvail, rowGap, func(i int, mode style.AvailableSpace) float32 {
		return maxRowContribution(cfg, t, items, colSizes, colGap, i, mode)
	})
	rowSizes := trackSizes(rowTracks)

	colOffsets := trackOffsets(colSizes, colGap)
	rowOffsets := trackOffsets(rowSizes, rowGap)

	finalWidth := contentWidth
	if !widthDefinite {
		finalWidth = sumTrackSizes(colSizes, colGap)
	}
	finalHeight := contentHeight
	if !heightDefinite {
		finalHeight = sumTrackSizes(rowSizes, rowGap)
	}

	if in.RunMode == tree.PerformLayout {
		order := 0
		for _, it := range items {
			positionGridItem(cfg, t, it, s, colSizes, colOffsets, rowSizes, rowOffsets, order)
			order++
		}
		borderBox := borderBoxSizeFromContentBox(geom.Size[float32]{Width: finalWidth, Height: finalHeight}, edges)
		borderBox = clampBorderBoxSize(s, borderBox, edges, in.ParentSize)
		layoutAbsoluteChildren(cfg, t, node, in, borderBox, edges, order)

		res := t.LayoutMut(node)
		res.Padding = edges.padding
		res.Border = edges.border
		res.Margin = edges.margin
	}

	content := geom.Size[float32]{Width: finalWidth, Height: finalHeight}
	borderBox := borderBoxSizeFromContentBox(content, edges)
	borderBox = clampBorderBoxSize(s, borderBox, edges, in.ParentSize)

	return tree.LayoutOutput{
		Size:         borderBox,
		ContentSize:  content,
		TopMargin:    tree.CollapsibleMargin{Value: edges.margin.Top},
		BottomMargin: tree.CollapsibleMargin{Value: edges.margin.Bottom},
	}
}

// axisContentSize resolves one axis's content-box size from known dims or
// available space, reporting whether the result is definite.
func axisContentSize(known *float32, avail style.AvailableSpace, pb float32) (float32, bool) {
	if known != nil {
		return geom.MaxF32(0, *known-pb), true
	}
	if v, ok := avail.Value(); ok {
		return geom.MaxF32(0, v-pb), true
	}
	return 0, false
}

// expandTracks extends an explicit track list with implicit tracks until
// it holds trackCount tracks in all. Implicit tracks cycle through the
// GridAutoRows/Columns entries, indexed by each track's position in the
// whole list (a single auto track if none given) (spec.md §4.6 phase 1
// "implicit grid").
func expandTracks(explicit, auto []style.TrackSizingFunction, trackCount int) []style.TrackSizingFunction {
	out := make([]style.TrackSizingFunction, len(explicit))
	copy(out, explicit)
	if len(auto) == 0 {
		auto = []style.TrackSizingFunction{style.AutoTrack()}
	}
	for len(out) < trackCount {
		out = append(out, auto[len(out)%len(auto)])
	}
	return out
}

// maxItemContribution returns the largest min/max-content contribution
// among single-track items placed in column index i (spec.md §4.6 phase
// 3). Items spanning more than one column contribute nothing to column
// sizing; only rows divide a spanning item's size evenly, in
// maxRowContribution.
func maxItemContribution(cfg Config, t Tree, items []*gridItem, axis geom.Axis, i int, mode style.AvailableSpace) float32 {
	best := float32(0)
	for _, it := range items {
		start, end := it.colStart, it.colEnd
		if axis == geom.AxisVertical {
			start, end = it.rowStart, it.rowEnd
		}
		if start != i || end != i+1 {
			continue
		}
		v := intrinsicMainSize(cfg, t, it.node, axis, mode, geom.Size[*float32]{})
		margin := style.ResolveRectAutoZero(it.s.Margin, nil)
		v += geom.SumAxis(margin, axis)
		best = geom.MaxF32(best, v)
	}
	return best
}

// maxRowContribution sizes a row from its single-row items' intrinsic
// height measured against the already-sized column widths, approximating
// spanning items by dividing their content height evenly across the rows
// they span (SPEC_FULL.md §4.6 documented simplification).
func maxRowContribution(cfg Config, t Tree, items []*gridItem, colSizes []float32, colGap float32, rowIdx int, mode style.AvailableSpace) float32 {
	best := float32(0)
	for _, it := range items {
		if rowIdx < it.rowStart || rowIdx >= it.rowEnd {
			continue
		}
		width := cellSpan(colSizes, colGap, it.colStart, it.colEnd)
		avail := geom.Size[style.AvailableSpace]{Width: style.Definite(width), Height: mode}
		in := contentSizeInput(geom.Size[*float32]{Width: &width}, avail)
		out := performLayout(cfg, t, it.node, in)
		margin := style.ResolveRectAutoZero(it.s.Margin, nil)
		h := out.Size.Height + geom.SumAxis(margin, geom.AxisVertical)
		span := it.rowEnd - it.rowStart
		if span > 1 {
			h = geom.MaxF32(0, h-colGap*float32(span-1)) / float32(span)
		}
		best = geom.MaxF32(best, h)
	}
	return best
}

func cellSpan(sizes []float32, gap float32, start, end int) float32 {
	if start < 0 {
		start = 0
	}
	if end > len(sizes) {
		end = len(sizes)
	}
	sum := float32(0)
	for i := start; i < end; i++ {
		if i > start {
			sum += gap
		}
		sum += sizes[i]
	}
	return sum
}
