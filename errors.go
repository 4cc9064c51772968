package kelp

import (
	"errors"
	"fmt"
)

// Sentinel validation errors for a malformed tree (spec.md §7). The
// engine is total for any valid tree; these only ever surface from the
// Must-prefixed constructors or from an explicit validation call, never
// from ComputeRootLayout itself, which always returns a layout.
var (
	ErrCyclicNode    = errors.New("kelp: node graph contains a cycle")
	ErrUnknownChild  = errors.New("kelp: child index out of range")
	ErrNonFiniteSize = errors.New("kelp: style contains a non-finite size")
)

// ValidateTree walks the subtree rooted at root and reports the first
// cycle found: a node re-visited along its own ancestor path, wrapped in
// ErrCyclicNode. It does not check child IDs, so it never returns
// ErrUnknownChild. Callers are expected to enforce
// tree validity upstream (spec.md §7); this is an opt-in check, not part
// of the hot layout path.
func ValidateTree(t Tree, root NodeID) error {
	return validateTree(t, root, map[NodeID]bool{})
}

func validateTree(t Tree, node NodeID, visiting map[NodeID]bool) error {
	if visiting[node] {
		return fmt.Errorf("%w: node %d", ErrCyclicNode, node)
	}
	visiting[node] = true
	defer delete(visiting, node)

	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		if err := validateTree(t, child, visiting); err != nil {
			return err
		}
	}
	return nil
}

// MustValidateTree panics if ValidateTree finds a problem, matching the
// teacher's Must-prefixed convenience wrappers (render.MustLoadFont,
// instructions.MustLoadLayerFromImagePath).
func MustValidateTree(t Tree, root NodeID) {
	if err := ValidateTree(t, root); err != nil {
		panic(err)
	}
}
