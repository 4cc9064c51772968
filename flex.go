package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// computeFlexLayout implements the CSS flex algorithm end-to-end per
// spec.md §4.5: line collection, flex-basis resolution, resolve-
// flexible-lengths, cross-size determination, and main/cross alignment.
func computeFlexLayout(cfg Config, t Tree, node NodeID, s *Style, in tree.LayoutInput) tree.LayoutOutput {
	mainAxis := geom.AxisVertical
	if s.FlexDirection.IsRow() {
		mainAxis = geom.AxisHorizontal
	}
	crossAxis := mainAxis.Other()
	reversedMain := s.FlexDirection.IsReversed()
	wrapReverse := s.FlexWrap == style.WrapReverse

	parentInline := in.ParentSize.Width
	edges := resolveBoxEdges(s, parentInline)
	pbMain := edges.paddingBorderSum(mainAxis)
	pbCross := edges.paddingBorderSum(crossAxis)
	gap := geom.Size[float32]{Width: s.Gap.Width.Resolve(parentInline), Height: s.Gap.Height.Resolve(parentInline)}
	mainGap := geom.Get(gap, mainAxis)
	crossGap := geom.Get(gap, crossAxis)

	knownDims := knownDimsFromStyle(s, in.KnownDims, in.ParentSize)
	mainDef, _ := resolveAxisAvailable(geom.Get(knownDims, mainAxis), geom.Get(in.AvailableSpace, mainAxis), pbMain)
	// An auto height is never taken from the available space: with a
	// vertical cross axis it comes from the summed line cross sizes.
	crossAvail := geom.Get(in.AvailableSpace, crossAxis)
	if crossAxis == geom.AxisVertical {
		crossAvail = style.MaxContentSpace
	}
	crossDef, _ := resolveAxisAvailable(geom.Get(knownDims, crossAxis), crossAvail, pbCross)

	if in.SizingMode == tree.ContentSize && mainDef == nil {
		mode := geom.Get(in.AvailableSpace, mainAxis)
		content := flexContainerIntrinsicSize(cfg, t, node, mainAxis, mode, gap)
		borderBox := borderBoxSizeFromContentBox(content, edges)
		borderBox = clampBorderBoxSize(s, borderBox, edges, in.ParentSize)
		return tree.LayoutOutput{Size: borderBox, ContentSize: content}
	}

	containerContent := axisSize(mainAxis, mainDef, crossDef)
	items := buildFlexItems(cfg, t, node, s, mainAxis, mainDef, crossDef, geom.Get(in.AvailableSpace, mainAxis))
	lines := collectFlexLines(items, mainDef, s.FlexWrap, mainGap)

	for _, line := range lines {
		available := lineMainUsed(line, mainAxis, mainGap)
		if mainDef != nil {
			available = *mainDef
		}
		resolveFlexibleLengths(line.items, available, mainGap)
	}
	determineCrossSizes(cfg, t, lines, mainAxis, crossDef)

	maxLineMain := float32(0)
	for _, line := range lines {
		maxLineMain = geom.MaxF32(maxLineMain, lineMainUsed(line, mainAxis, mainGap))
	}
	totalLinesCross := float32(0)
	for i, line := range lines {
		if i > 0 {
			totalLinesCross += crossGap
		}
		totalLinesCross += line.crossSize
	}

	finalMain := maxLineMain
	if mainDef != nil {
		finalMain = *mainDef
	}
	finalCross := totalLinesCross
	if crossDef != nil {
		finalCross = *crossDef
	}

	if s.AlignContent == style.AlignContentStretch && crossDef != nil && len(lines) > 0 {
		extra := geom.MaxF32(0, *crossDef-totalLinesCross)
		share := extra / float32(len(lines))
		for _, line := range lines {
			line.crossSize += share
		}
		totalLinesCross = *crossDef
	}

	if in.RunMode == tree.PerformLayout {
		leadingCross, betweenCross := distributeExtraSpace(len(lines), finalCross-totalLinesCross, alignContentToJustify(s.AlignContent))
		orderedLines := lines
		if wrapReverse {
			orderedLines = reverseLines(lines)
		}

		crossCursor := leadingCross
		order := 0
		for li, line := range orderedLines {
			lineMain := lineMainUsed(line, mainAxis, mainGap)
			free := finalMain - lineMain
			autoCount := mainAxisAutoMarginCount(line.items, mainAxis)

			var leadingMain, betweenMain, autoShare float32
			if autoCount > 0 && free > 0 {
				autoShare = free / float32(autoCount)
			} else {
				leadingMain, betweenMain = distributeExtraSpace(len(line.items), free, s.JustifyContent)
			}

			orderedItems := line.items
			if reversedMain {
				orderedItems = reverseItems(line.items)
			}

			mainCursor := leadingMain
			for ii, it := range orderedItems {
				align := resolveItemAlignment(it, s.AlignItems)
				finalItemCross := finalizeCrossSize(it, line, crossAxis, align)
				crossOffset := crossAlignOffset(align, line.crossSize, finalItemCross)

				marginMainStart := geom.StartAxis(it.margin, it.mainAxis)
				marginMainEnd := geom.EndAxis(it.margin, it.mainAxis)
				if autoShare > 0 {
					if rectStartAuto(it.marginAuto, it.mainAxis) {
						marginMainStart += autoShare
					}
					if rectEndAuto(it.marginAuto, it.mainAxis) {
						marginMainEnd += autoShare
					}
				}
				marginCrossStart := geom.StartAxis(it.margin, crossAxis)

				posMain := mainCursor + marginMainStart
				posCross := crossCursor + crossOffset + marginCrossStart

				known := axisSize(mainAxis, &it.target, &finalItemCross)
				childIn := tree.LayoutInput{
					RunMode:    tree.PerformLayout,
					SizingMode: tree.InherentSize,
					KnownDims:  known,
					ParentSize: containerContent,
					AvailableSpace: geom.Size[style.AvailableSpace]{
						Width:  axisAvailable(mainAxis, geom.AxisHorizontal, it.target, finalItemCross),
						Height: axisAvailable(mainAxis, geom.AxisVertical, it.target, finalItemCross),
					},
				}
				location := pointFromAxes(mainAxis, posMain, posCross)
				performChildLayout(cfg, t, it.node, childIn, location, order)
				order++

				mainCursor = posMain + it.target + marginMainEnd
				if ii < len(orderedItems)-1 {
					mainCursor += mainGap + betweenMain
				}
			}

			crossCursor += line.crossSize
			if li < len(orderedLines)-1 {
				crossCursor += crossGap + betweenCross
			}
		}

		layoutAbsoluteChildren(cfg, t, node, in, borderBoxSizeFromContentBox(axisSize2(mainAxis, finalMain, finalCross), edges), edges, order)
	}

	content := axisSize2(mainAxis, finalMain, finalCross)
	borderBox := borderBoxSizeFromContentBox(content, edges)
	borderBox = clampBorderBoxSize(s, borderBox, edges, in.ParentSize)

	if in.RunMode == tree.PerformLayout {
		res := t.LayoutMut(node)
		res.Padding = edges.padding
		res.Border = edges.border
		res.Margin = edges.margin
	}

	return tree.LayoutOutput{
		Size:         borderBox,
		ContentSize:  content,
		TopMargin:    tree.CollapsibleMargin{Value: edges.margin.Top},
		BottomMargin: tree.CollapsibleMargin{Value: edges.margin.Bottom},
	}
}

func resolveAxisAvailable(known *float32, avail style.AvailableSpace, pb float32) (*float32, style.AvailableSpace) {
	if known != nil {
		v := geom.MaxF32(0, *known-pb)
		return &v, style.Definite(v)
	}
	if v, ok := avail.Value(); ok {
		v2 := geom.MaxF32(0, v-pb)
		return &v2, style.Definite(v2)
	}
	return nil, avail
}

func lineMainUsed(line *flexLine, mainAxis geom.Axis, gap float32) float32 {
	if len(line.items) == 0 {
		return 0
	}
	sum := gap * float32(len(line.items)-1)
	for _, it := range line.items {
		sum += it.target + geom.SumAxis(it.margin, mainAxis)
	}
	return sum
}

// mainAxisAutoMarginCount counts how many main-axis margin edges across a
// line's items are auto, per spec.md §4.5 step 7: a positive count with
// positive free space means that space is absorbed by the auto margins
// instead of justify-content.
func mainAxisAutoMarginCount(items []*flexItem, mainAxis geom.Axis) int {
	n := 0
	for _, it := range items {
		if rectStartAuto(it.marginAuto, mainAxis) {
			n++
		}
		if rectEndAuto(it.marginAuto, mainAxis) {
			n++
		}
	}
	return n
}

func rectStartAuto(r geom.Rect[bool], axis geom.Axis) bool {
	if axis == geom.AxisHorizontal {
		return r.Left
	}
	return r.Top
}

func rectEndAuto(r geom.Rect[bool], axis geom.Axis) bool {
	if axis == geom.AxisHorizontal {
		return r.Right
	}
	return r.Bottom
}

func pointFromAxes(mainAxis geom.Axis, main, cross float32) geom.Point[float32] {
	if mainAxis == geom.AxisHorizontal {
		return geom.Point[float32]{X: main, Y: cross}
	}
	return geom.Point[float32]{X: cross, Y: main}
}

// axisAvailable returns a Definite available space for whichever of
// width/height corresponds to the queried physical axis, given the
// item's already-resolved main/cross target sizes.
func axisAvailable(mainAxis, physical geom.Axis, mainV, crossV float32) style.AvailableSpace {
	if physical == mainAxis {
		return style.Definite(mainV)
	}
	return style.Definite(crossV)
}

func reverseItems(items []*flexItem) []*flexItem {
	out := make([]*flexItem, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

func reverseLines(lines []*flexLine) []*flexLine {
	out := make([]*flexLine, len(lines))
	for i, l := range lines {
		out[len(lines)-1-i] = l
	}
	return out
}
