// Package style holds the node style data model (display mode, box-model
// dimensions, flex/grid placement) and the pure functions that resolve it
// against a containing block: dimension resolution, min/max clamping,
// aspect-ratio transfer and percentage resolution. It mirrors the role the
// teacher library gives internal/core/image/patterns for color: a typed
// value model plus its own resolution arithmetic, kept separate from the
// formatting contexts that consume it.
package style

// Display selects which formatting context lays out a node's children.
type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayInline
	DisplayInlineBlock
	DisplayNone
)

// BoxSizing controls whether size/min_size/max_size describe the border
// box or the content box.
type BoxSizing int

const (
	BorderBox BoxSizing = iota
	ContentBox
)

// PositionType selects how a node participates in its parent's flow.
type PositionType int

const (
	PositionStatic PositionType = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// Overflow controls whether content exceeding a node's box is visible,
// clipped, or contributes to scrollable content size.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// IsRow reports whether the main axis runs horizontally.
func (d FlexDirection) IsRow() bool {
	return d == FlexRow || d == FlexRowReverse
}

// IsReversed reports whether items lay out from the end of the main axis.
func (d FlexDirection) IsReversed() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

type AlignItems int

const (
	AlignStart AlignItems = iota
	AlignEnd
	AlignCenter
	AlignStretch
	AlignBaseline
)

// AlignSelf mirrors AlignItems with the addition of Auto, meaning "defer
// to the container's align-items".
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfStretch
	AlignSelfBaseline
)

// Resolve folds AlignSelfAuto into the container's align-items value.
func (a AlignSelf) Resolve(containerAlignItems AlignItems) AlignItems {
	switch a {
	case AlignSelfStart:
		return AlignStart
	case AlignSelfEnd:
		return AlignEnd
	case AlignSelfCenter:
		return AlignCenter
	case AlignSelfStretch:
		return AlignStretch
	case AlignSelfBaseline:
		return AlignBaseline
	default:
		return containerAlignItems
	}
}

// AlignContent governs cross-axis packing of multiple flex lines. Grid
// layout does not read it.
type AlignContent int

const (
	AlignContentStart AlignContent = iota
	AlignContentEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

type GridAutoFlow int

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

// IsColumn reports whether auto-placement advances column-major.
func (f GridAutoFlow) IsColumn() bool {
	return f == GridAutoFlowColumn || f == GridAutoFlowColumnDense
}

// IsDense reports whether auto-placement backtracks to fill earlier holes.
func (f GridAutoFlow) IsDense() bool {
	return f == GridAutoFlowRowDense || f == GridAutoFlowColumnDense
}
