package kelp

import "github.com/kelplayout/kelp/internal/style"

// distributeExtraSpace implements the packing math shared by
// justify-content and align-content (spec.md §4.5 steps 7 and 9): given
// count boxes and extra free space along an axis, it returns the offset
// before the first box and the additional gap inserted between boxes.
// Negative extra (overflow) always packs at the start, per spec.md §4.5
// step 7 "when extra space is negative, packs at start".
func distributeExtraSpace(count int, extra float32, justify style.JustifyContent) (leading, between float32) {
	if count == 0 || extra <= 0 {
		return 0, 0
	}
	switch justify {
	case style.JustifyEnd:
		return extra, 0
	case style.JustifyCenter:
		return extra / 2, 0
	case style.JustifySpaceBetween:
		if count == 1 {
			return 0, 0
		}
		return 0, extra / float32(count-1)
	case style.JustifySpaceAround:
		each := extra / float32(count)
		return each / 2, each
	case style.JustifySpaceEvenly:
		each := extra / float32(count+1)
		return each, each
	default: // JustifyStart
		return 0, 0
	}
}

// alignContentToJustify maps the packing half of align-content onto the
// same distribution math as justify-content; AlignContentStretch is
// handled separately by growing each line instead of spacing them.
func alignContentToJustify(a style.AlignContent) style.JustifyContent {
	switch a {
	case style.AlignContentEnd:
		return style.JustifyEnd
	case style.AlignContentCenter:
		return style.JustifyCenter
	case style.AlignContentSpaceBetween:
		return style.JustifySpaceBetween
	case style.AlignContentSpaceAround:
		return style.JustifySpaceAround
	case style.AlignContentSpaceEvenly:
		return style.JustifySpaceEvenly
	default:
		return style.JustifyStart
	}
}

// crossAlignOffset positions an item within its line's cross size per
// align-self (spec.md §4.5 step 8). Baseline is treated as Start: full
// baseline alignment across flex lines is flagged in spec.md §9 as an
// open question to implement from the CSS Box Alignment spec rather than
// replicate source behavior, and is out of scope for this pass.
func crossAlignOffset(align style.AlignItems, lineCross, itemCross float32) float32 {
	switch align {
	case style.AlignEnd:
		return lineCross - itemCross
	case style.AlignCenter:
		return (lineCross - itemCross) / 2
	default:
		return 0
	}
}
