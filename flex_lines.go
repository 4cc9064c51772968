package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// flexLine is one wrapped row (or column) of flex items (spec.md §4.5
// step 4).
type flexLine struct {
	items     []*flexItem
	crossSize float32
}

// collectFlexLines groups items into lines respecting flex-wrap: a
// line's accumulated hypothetical main size must not exceed the
// available main size when wrapping is enabled (spec.md §4.5 step 4).
func collectFlexLines(items []*flexItem, availableMain *float32, wrap style.FlexWrap, gap float32) []*flexLine {
	if wrap == style.NoWrap || availableMain == nil || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	var current []*flexItem
	used := float32(0)
	for _, it := range items {
		outer := it.hypotheticalMain + geom.SumAxis(it.margin, it.mainAxis)
		next := used
		if len(current) > 0 {
			next += gap
		}
		next += outer
		if len(current) > 0 && next > *availableMain {
			lines = append(lines, &flexLine{items: current})
			current = []*flexItem{it}
			used = outer
		} else {
			current = append(current, it)
			used = next
		}
	}
	if len(current) > 0 {
		lines = append(lines, &flexLine{items: current})
	}
	return lines
}

// determineCrossSizes runs spec.md §4.5 step 6: queries each item's
// cross size via a content pass now that its main size is fixed, then
// sets each line's cross size to the max of its items' outer cross
// sizes (or the container's own cross size when there is exactly one
// line and it is definite, the common "single-line stretch" case).
func determineCrossSizes(cfg Config, t Tree, lines []*flexLine, mainAxis geom.Axis, containerCross *float32) {
	crossAxis := mainAxis.Other()
	for _, line := range lines {
		for _, it := range line.items {
			known := axisSize(mainAxis, &it.target, nil)
			avail := geom.Size[style.AvailableSpace]{Width: style.MaxContentSpace, Height: style.MaxContentSpace}
			if containerCross != nil {
				setAxis(&avail, crossAxis, style.Definite(*containerCross))
			}
			in := contentSizeInput(geom.Size[*float32]{}, avail)
			in.KnownDims = known
			out := performLayout(cfg, t, it.node, in)
			it.crossSize = geom.Get(out.Size, crossAxis)
			it.crossSize = style.Clamp(it.crossSize, it.minCross, it.maxCross)
		}
		maxOuter := float32(0)
		for _, it := range line.items {
			maxOuter = geom.MaxF32(maxOuter, it.crossSize+geom.SumAxis(it.margin, crossAxis))
		}
		line.crossSize = maxOuter
	}
	if len(lines) == 1 && containerCross != nil {
		lines[0].crossSize = geom.MaxF32(lines[0].crossSize, *containerCross)
	}
}

func setAxis(s *geom.Size[style.AvailableSpace], axis geom.Axis, v style.AvailableSpace) {
	if axis == geom.AxisHorizontal {
		s.Width = v
	} else {
		s.Height = v
	}
}

// resolveItemAlignment returns the effective align-items value for it,
// folding AlignSelfAuto into the container's own align-items.
func resolveItemAlignment(it *flexItem, containerAlign style.AlignItems) style.AlignItems {
	return it.style.AlignSelf.Resolve(containerAlign)
}

// finalizeCrossSize applies stretch: an item whose own cross-size style
// is auto grows to fill its line's cross size, minus its cross margins
// (spec.md §4.5 step 8).
func finalizeCrossSize(it *flexItem, line *flexLine, crossAxis geom.Axis, align style.AlignItems) float32 {
	if align != style.AlignStretch {
		return it.crossSize
	}
	crossStyle := geom.Get(it.style.Size, crossAxis)
	if !crossStyle.IsAuto() {
		return it.crossSize
	}
	stretched := line.crossSize - geom.SumAxis(it.margin, crossAxis)
	return style.Clamp(geom.MaxF32(0, stretched), it.minCross, it.maxCross)
}
