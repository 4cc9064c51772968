package style

// trackKind tags a TrackSizingFunction's variant.
type trackKind uint8

const (
	trackFixed trackKind = iota
	trackMinMax
	trackFlex
	trackMinContent
	trackMaxContent
	trackAuto
)

// TrackSizingFunction is a single grid track's sizing function: a fixed
// length/percent, minmax(a, b), an fr flex factor, or one of the
// intrinsic keywords. Per spec.md §4.6 phase 1, minmax(a,b) becomes
// (a, b) directly; fr becomes (0, +Inf); the intrinsic keywords defer
// their base/growth-limit to the intrinsic sizing phase.
type TrackSizingFunction struct {
	kind  trackKind
	min   LengthPercentage
	max   LengthPercentage
	flex  float32
}

func FixedTrack(lp LengthPercentage) TrackSizingFunction {
	return TrackSizingFunction{kind: trackFixed, min: lp, max: lp}
}

func MinMaxTrack(min, max LengthPercentage) TrackSizingFunction {
	return TrackSizingFunction{kind: trackMinMax, min: min, max: max}
}

func FlexTrack(fr float32) TrackSizingFunction {
	return TrackSizingFunction{kind: trackFlex, flex: fr}
}

func MinContentTrack() TrackSizingFunction { return TrackSizingFunction{kind: trackMinContent} }
func MaxContentTrack() TrackSizingFunction { return TrackSizingFunction{kind: trackMaxContent} }
func AutoTrack() TrackSizingFunction       { return TrackSizingFunction{kind: trackAuto} }

func (f TrackSizingFunction) IsFlex() bool { return f.kind == trackFlex }
func (f TrackSizingFunction) FlexFactor() float32 {
	if f.kind != trackFlex {
		return 0
	}
	return f.flex
}

// HasIntrinsicMin reports whether the track's minimum must be resolved
// from item content (min-content/max-content/auto keywords) rather than a
// fixed length or percentage.
func (f TrackSizingFunction) HasIntrinsicMin() bool {
	return f.kind == trackMinContent || f.kind == trackMaxContent || f.kind == trackAuto
}

// ResolvedMinimum returns the definite pixel minimum of f, or nil if the
// minimum is intrinsic and must come from the track-sizing algorithm's
// content phase instead.
func (f TrackSizingFunction) ResolvedMinimum(parent *float32) *float32 {
	if f.HasIntrinsicMin() {
		return nil
	}
	v := f.min.Resolve(parent)
	return &v
}

// ResolvedMaximum returns the definite pixel growth limit of f, or nil if
// the track grows without bound (fr tracks) or its limit is intrinsic.
func (f TrackSizingFunction) ResolvedMaximum(parent *float32) *float32 {
	switch f.kind {
	case trackFlex, trackMinContent, trackMaxContent, trackAuto:
		return nil
	default:
		v := f.max.Resolve(parent)
		return &v
	}
}

// Repetition distinguishes an explicit repeat(n, ...) from the
// auto-fill/auto-fit forms. The layout code does not expand TrackRepeat:
// Style's track lists hold already-expanded TrackSizingFunctions.
type Repetition int

const (
	RepeatCount Repetition = iota
	RepeatAutoFill
	RepeatAutoFit
)

// TrackRepeat is one repeat(...) clause in a grid-template-columns/rows
// list prior to expansion.
type TrackRepeat struct {
	Mode   Repetition
	Count  int // meaningful only when Mode == RepeatCount
	Tracks []TrackSizingFunction
}

// GridLine is a 1-based grid line reference; negative values count from
// the end of the explicit grid, zero means unspecified (auto-placed).
type GridLine int

// GridPlacement is a grid-row/grid-column declaration: a start line, an
// end line, or a span count, any of which may be left unset (auto).
type GridPlacement struct {
	Start GridLine
	End   GridLine
	Span  int // 0 means "no explicit span"
}

// IsAutoStart reports whether the item's start line must come from
// auto-placement.
func (p GridPlacement) IsAutoStart() bool { return p.Start == 0 }

// IsAutoEnd reports whether the item's end line must come from
// auto-placement or from Span.
func (p GridPlacement) IsAutoEnd() bool { return p.End == 0 }
