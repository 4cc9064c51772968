package kelp

// Rounding selects whether final layout rectangles are snapped to whole
// device pixels.
type Rounding int

const (
	RoundingNone Rounding = iota
	RoundingPixelSnap
)

// DefaultPosition names a default position mode (spec.md §6
// "Configuration"). Config carries it, but no formatting context reads
// it: every node is laid out by its own Style.Position.
type DefaultPosition int

const (
	DefaultPositionStatic DefaultPosition = iota
	DefaultPositionRelative
)

// Config holds the small set of engine-wide options spec.md §6 allows:
// no CLI or persisted state lives in the core, so this is the entire
// surface. It is passed by value into ComputeRootLayout, the same way
// ContainerStyle is passed by value into the teacher's NewAutoLayout.
type Config struct {
	Rounding        Rounding
	DefaultPosition DefaultPosition
	Diagnostics     DiagnosticSink
}

// DefaultConfig returns the engine's default options: no rounding, CSS
// static default position, and no diagnostics sink (warnings are
// silently dropped).
func DefaultConfig() Config {
	return Config{Rounding: RoundingNone, DefaultPosition: DefaultPositionStatic}
}
