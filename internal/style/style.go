package style

import "github.com/kelplayout/kelp/internal/core/geom"

// Style is the full set of computed style inputs a node's layout depends
// on. It is produced upstream by a CSS cascade engine (out of scope per
// spec.md §1); this engine consumes it as an opaque, already-resolved
// value, the same way the teacher's ContainerStyle/ItemStyle
// (instructions/auto_layout_styles.go) are assembled once and then only
// read during layout.
type Style struct {
	Display   Display
	BoxSizing BoxSizing

	Size    geom.Size[Dimension]
	MinSize geom.Size[Dimension]
	MaxSize geom.Size[Dimension]

	AspectRatio *float32

	Margin  geom.Rect[LengthPercentageAuto]
	Padding geom.Rect[LengthPercentage]
	Border  geom.Rect[LengthPercentage]

	Position PositionType
	Inset    geom.Rect[LengthPercentageAuto]

	Overflow       geom.Point[Overflow]
	ScrollbarWidth float32

	Gap geom.Size[LengthPercentage]

	// Flex container fields.
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignContent   AlignContent

	// Flex item fields.
	AlignSelf  AlignSelf
	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension

	// Grid container fields.
	GridTemplateColumns []TrackSizingFunction
	GridTemplateRows    []TrackSizingFunction
	GridTemplateAreas   map[string]GridPlacement2D
	GridAutoColumns     []TrackSizingFunction
	GridAutoRows        []TrackSizingFunction
	GridAutoFlow        GridAutoFlow
	JustifyItems        AlignItems
	JustifySelf         AlignSelf

	// Grid item fields.
	GridRow    GridPlacement
	GridColumn GridPlacement
}

// GridPlacement2D is the resolved row/column span a grid-template-areas
// name expands to.
type GridPlacement2D struct {
	Row    GridPlacement
	Column GridPlacement
}

// Default returns the initial style values: block display, border-box
// sizing, static position, row-direction flex defaults, stretch
// alignment, flex-grow/shrink at their CSS initial values (0 and 1).
func Default() Style {
	return Style{
		Display:        DisplayBlock,
		BoxSizing:      BorderBox,
		Size:           geom.Size[Dimension]{Width: Auto(), Height: Auto()},
		MinSize:        geom.Size[Dimension]{Width: Auto(), Height: Auto()},
		MaxSize:        geom.Size[Dimension]{Width: Auto(), Height: Auto()},
		Position:       PositionStatic,
		Inset:          geom.Rect[LengthPercentageAuto]{Top: LPAAuto(), Right: LPAAuto(), Bottom: LPAAuto(), Left: LPAAuto()},
		FlexDirection:  FlexRow,
		FlexWrap:       NoWrap,
		JustifyContent: JustifyStart,
		AlignItems:     AlignStretch,
		AlignContent:   AlignContentStart,
		AlignSelf:      AlignSelfAuto,
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto(),
		JustifyItems:   AlignStretch,
		JustifySelf:    AlignSelfAuto,
	}
}

// IsFlexContainer reports whether the node's children should be laid out
// by the flex formatting context.
func (s Style) IsFlexContainer() bool { return s.Display == DisplayFlex }

// IsGridContainer reports whether the node's children should be laid out
// by the grid formatting context.
func (s Style) IsGridContainer() bool { return s.Display == DisplayGrid }

// IsNone reports whether the node is display:none; such nodes produce a zero-size result and are not
// descended into (spec.md §4.1 "Dispatch").
func (s Style) IsNone() bool { return s.Display == DisplayNone }
