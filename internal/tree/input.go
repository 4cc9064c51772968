// Package tree holds the sizing-protocol data structures that flow
// between the engine's formatting contexts and the per-node result
// cache: LayoutInput/LayoutOutput, the RunMode/SizingMode tags, and the
// Cache implementation itself. The kelp root package re-exports the
// public-facing parts under its own names in aliases.go.
package tree

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// RunMode selects how much work a formatting context does: ComputeSize
// must be cheap and writes nothing, PerformLayout additionally writes
// final positions for every descendant (spec.md §4.2).
type RunMode int

const (
	PerformLayout RunMode = iota
	ComputeSize
)

// SizingMode distinguishes a query for the node's own (possibly
// style-constrained) size from a pure content-size query used by
// intrinsic sizing (spec.md §4.1 "Public entry").
type SizingMode int

const (
	InherentSize SizingMode = iota
	ContentSize
)

// LayoutInput bundles everything a formatting context needs to size or
// lay out a node: the sizes already known from the caller or an ancestor,
// the parent size for percentage resolution, the space on offer, which
// pass is running, and which sizing mode is in effect.
type LayoutInput struct {
	RunMode        RunMode
	SizingMode     SizingMode
	KnownDims      geom.Size[*float32]
	ParentSize     geom.Size[*float32]
	AvailableSpace geom.Size[style.AvailableSpace]

	// RunsFromContext is carried along with the input but no formatting
	// context reads it, and the cache key ignores it.
	RunsFromContext bool
}

// LayoutOutput is the result a formatting context hands back to its
// caller: the node's own size plus enough bookkeeping for the caller to
// compute its own content extent without a second pass.
type LayoutOutput struct {
	Size            geom.Size[float32]
	ContentSize     geom.Size[float32]
	FirstBaselines  geom.Size[*float32]
	TopMargin       CollapsibleMargin
	BottomMargin    CollapsibleMargin
	MarginsCanCollapseThrough bool
}

// CollapsibleMargin is a margin value that collapses with an adjoining
// sibling or parent margin (spec.md §4.4).
type CollapsibleMargin struct {
	Value float32
}

// Collapse combines two adjoining margins per CSS 2.1 §8.3.1: positive
// values take the max, a positive and a negative sum, two negatives take
// the min.
func (m CollapsibleMargin) Collapse(other CollapsibleMargin) CollapsibleMargin {
	a, b := m.Value, other.Value
	switch {
	case a >= 0 && b >= 0:
		return CollapsibleMargin{Value: geom.MaxF32(a, b)}
	case a < 0 && b < 0:
		return CollapsibleMargin{Value: geom.MinF32(a, b)}
	default:
		return CollapsibleMargin{Value: a + b}
	}
}

// ZeroOutput is the result for a display:none or otherwise degenerate
// node.
func ZeroOutput() LayoutOutput {
	return LayoutOutput{}
}
