package kelp

import (
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

// Type aliases for public API.
//
// These re-export the style and cache data model from their internal
// implementation packages under the kelp namespace, the same role the
// teacher's own aliases.go gives render.Font and instructions.Layer.
type (
	Style                = style.Style
	Dimension            = style.Dimension
	LengthPercentage     = style.LengthPercentage
	LengthPercentageAuto = style.LengthPercentageAuto
	AvailableSpace       = style.AvailableSpace

	Display      = style.Display
	BoxSizing    = style.BoxSizing
	PositionType = style.PositionType
	Overflow     = style.Overflow

	FlexDirection  = style.FlexDirection
	FlexWrap       = style.FlexWrap
	JustifyContent = style.JustifyContent
	AlignItems     = style.AlignItems
	AlignSelf      = style.AlignSelf
	AlignContent   = style.AlignContent

	GridAutoFlow        = style.GridAutoFlow
	GridPlacement       = style.GridPlacement
	GridLine            = style.GridLine
	TrackSizingFunction = style.TrackSizingFunction
	Repetition          = style.Repetition
	TrackRepeat         = style.TrackRepeat

	Cache        = tree.Cache
	LayoutInput  = tree.LayoutInput
	LayoutOutput = tree.LayoutOutput
	RunMode      = tree.RunMode
	SizingMode   = tree.SizingMode
)

// Display modes.
const (
	DisplayBlock       = style.DisplayBlock
	DisplayFlex        = style.DisplayFlex
	DisplayGrid        = style.DisplayGrid
	DisplayInline      = style.DisplayInline
	DisplayInlineBlock = style.DisplayInlineBlock
	DisplayNone        = style.DisplayNone
)

// Box sizing.
const (
	BorderBox  = style.BorderBox
	ContentBox = style.ContentBox
)

// Position types.
const (
	PositionStatic   = style.PositionStatic
	PositionRelative = style.PositionRelative
	PositionAbsolute = style.PositionAbsolute
	PositionFixed    = style.PositionFixed
)

// Overflow modes.
const (
	OverflowVisible = style.OverflowVisible
	OverflowHidden  = style.OverflowHidden
	OverflowScroll  = style.OverflowScroll
)

// Flex direction.
const (
	FlexRow            = style.FlexRow
	FlexRowReverse     = style.FlexRowReverse
	FlexColumn         = style.FlexColumn
	FlexColumnReverse  = style.FlexColumnReverse
)

// Flex wrap.
const (
	NoWrap      = style.NoWrap
	Wrap        = style.Wrap
	WrapReverse = style.WrapReverse
)

// Justify content.
const (
	JustifyStart        = style.JustifyStart
	JustifyEnd          = style.JustifyEnd
	JustifyCenter       = style.JustifyCenter
	JustifySpaceBetween = style.JustifySpaceBetween
	JustifySpaceAround  = style.JustifySpaceAround
	JustifySpaceEvenly  = style.JustifySpaceEvenly
)

// Align items / self / content.
const (
	AlignStart    = style.AlignStart
	AlignEnd      = style.AlignEnd
	AlignCenter   = style.AlignCenter
	AlignStretch  = style.AlignStretch
	AlignBaseline = style.AlignBaseline

	AlignSelfAuto     = style.AlignSelfAuto
	AlignSelfStart    = style.AlignSelfStart
	AlignSelfEnd      = style.AlignSelfEnd
	AlignSelfCenter   = style.AlignSelfCenter
	AlignSelfStretch  = style.AlignSelfStretch
	AlignSelfBaseline = style.AlignSelfBaseline

	AlignContentStart        = style.AlignContentStart
	AlignContentEnd          = style.AlignContentEnd
	AlignContentCenter       = style.AlignContentCenter
	AlignContentStretch      = style.AlignContentStretch
	AlignContentSpaceBetween = style.AlignContentSpaceBetween
	AlignContentSpaceAround  = style.AlignContentSpaceAround
	AlignContentSpaceEvenly  = style.AlignContentSpaceEvenly
)

// Grid auto-flow.
const (
	GridAutoFlowRow         = style.GridAutoFlowRow
	GridAutoFlowColumn      = style.GridAutoFlowColumn
	GridAutoFlowRowDense    = style.GridAutoFlowRowDense
	GridAutoFlowColumnDense = style.GridAutoFlowColumnDense
)

// Repetition modes for repeat().
const (
	RepeatCount    = style.RepeatCount
	RepeatAutoFill = style.RepeatAutoFill
	RepeatAutoFit  = style.RepeatAutoFit
)

// RunMode / SizingMode.
const (
	PerformLayout = tree.PerformLayout
	ComputeSize   = tree.ComputeSize

	InherentSize = tree.InherentSize
	ContentSize  = tree.ContentSize
)

// Dimension constructors.
var (
	Length  = style.Length
	Percent = style.Percent
	Auto    = style.Auto

	LPLength  = style.LPLength
	LPPercent = style.LPPercent

	LPALength  = style.LPALength
	LPAPercent = style.LPAPercent
	LPAAuto    = style.LPAAuto

	Definite        = style.Definite
	MinContentSpace = style.MinContentSpace
	MaxContentSpace = style.MaxContentSpace

	DefaultStyle = style.Default

	FixedTrack   = style.FixedTrack
	MinMaxTrack  = style.MinMaxTrack
	FlexTrack    = style.FlexTrack
	AutoTrack    = style.AutoTrack
)
