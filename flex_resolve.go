package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// resolveFlexibleLengths distributes free space across a single line's
// items, implementing spec.md §4.5 step 5: freeze inflexible items,
// iteratively distribute free space proportional to flex-grow/shrink,
// freezing items that hit a min/max violation, until nothing remains to
// distribute. Generalizes the teacher's floor-plus-remainder distribution
// in instructions/auto_layout_place.go's placeLines from integer pixels
// to float32 with the CSS freeze-on-violation loop (SPEC_FULL.md §4.5).
func resolveFlexibleLengths(items []*flexItem, availableMain float32, gap float32) {
	if len(items) == 0 {
		return
	}
	gapTotal := gap * float32(len(items)-1)
	hypotheticalTotal := gapTotal
	for _, it := range items {
		hypotheticalTotal += it.hypotheticalMain + geom.SumAxis(it.margin, it.mainAxis)
		it.target = it.hypotheticalMain
	}
	growing := hypotheticalTotal < availableMain

	for _, it := range items {
		factor := it.style.FlexGrow
		if !growing {
			factor = it.style.FlexShrink
		}
		it.frozen = factor == 0 ||
			(growing && it.flexBasis > it.hypotheticalMain) ||
			(!growing && it.flexBasis < it.hypotheticalMain)
	}

	for pass := 0; pass < len(items)+1; pass++ {
		sumFrozen := float32(0)
		sumBasisUnfrozen := float32(0)
		sumGrow := float32(0)
		sumShrinkScaled := float32(0)
		anyUnfrozen := false
		for _, it := range items {
			outerMargin := geom.SumAxis(it.margin, it.mainAxis)
			if it.frozen {
				sumFrozen += it.target + outerMargin
				continue
			}
			anyUnfrozen = true
			sumBasisUnfrozen += it.flexBasis + outerMargin
			sumGrow += it.style.FlexGrow
			sumShrinkScaled += it.style.FlexShrink * it.flexBasis
		}
		if !anyUnfrozen {
			break
		}

		remaining := availableMain - gapTotal - sumFrozen - sumBasisUnfrozen

		totalViolation := float32(0)
		for _, it := range items {
			if it.frozen {
				continue
			}
			var proposed float32
			switch {
			case growing && sumGrow > 0:
				proposed = it.flexBasis + remaining*(it.style.FlexGrow/sumGrow)
			case !growing && sumShrinkScaled > 0:
				scaled := it.style.FlexShrink * it.flexBasis
				proposed = it.flexBasis + remaining*(scaled/sumShrinkScaled)
			default:
				proposed = it.flexBasis
			}
			clamped := clampFlexTarget(proposed, it)
			it.violation = clamped - proposed
			it.target = clamped
			totalViolation += it.violation
		}

		switch {
		case totalViolation == 0:
			for _, it := range items {
				it.frozen = true
			}
		case totalViolation > 0:
			for _, it := range items {
				if !it.frozen && it.violation > 0 {
					it.frozen = true
				}
			}
		default:
			for _, it := range items {
				if !it.frozen && it.violation < 0 {
					it.frozen = true
				}
			}
		}
	}
}

func clampFlexTarget(v float32, it *flexItem) float32 {
	return style.Clamp(v, it.minMain, it.maxMain)
}
