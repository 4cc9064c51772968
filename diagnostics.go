package kelp

// WarningKind classifies an unsupported-feature or misbehavior warning
// the engine emits instead of failing a layout pass (spec.md §7).
type WarningKind int

const (
	WarnUnsupportedFloat WarningKind = iota
	WarnUnsupportedWritingMode
	WarnMeasureOutOfRange
	WarnCyclicPercentage
)

// Warning is a structured diagnostic the engine reports through an
// optional DiagnosticSink rather than an error return, keeping the "every call
// returns a valid layout" invariant exact (spec.md §7).
type Warning struct {
	Kind   WarningKind
	Node   NodeID
	Detail string
}

// DiagnosticSink receives warnings as they occur during a layout pass. A
// Config whose Diagnostics field is nil silently drops them, the default behavior spec.md
// §4.9 requires.
type DiagnosticSink interface {
	Warn(w Warning)
}

func (c Config) warn(w Warning) {
	if c.Diagnostics != nil {
		c.Diagnostics.Warn(w)
	}
}
