package kelp

import "github.com/kelplayout/kelp/internal/style"

// gridItem is one grid child together with its resolved placement and
// working sizing state, the grid counterpart of flexItem.
type gridItem struct {
	node NodeID
	s    *Style

	rowStart, rowEnd int // 0-based, end exclusive
	colStart, colEnd int
}

// placeGridItems implements spec.md §4.6 phase 2: explicit placement when
// both GridRow and GridColumn give a start line, auto-placement by
// GridAutoFlow otherwise (an item with only one start line given is
// auto-placed on both axes). End lines and GridTemplateAreas are not
// read; an item's extent comes from Span alone. Placement is 0-based
// internally; GridLine values from style are 1-based per CSS and
// converted on the way in. Dense packing backfills
// earlier holes in the flow axis, matching CSS Grid's "dense" keyword.
//
// Grounded on the auto-placement cursor in
// other_examples/19bbe146_SCKelemen-layout__grid_setup.go.go's row-major
// itemIndex walk, extended with explicit placement and the dense variant.
func placeGridItems(t Tree, node NodeID, s *Style, colCount, rowCount int) ([]*gridItem, int, int) {
	column := s.GridAutoFlow.IsColumn()
	dense := s.GridAutoFlow.IsDense()

	var items []*gridItem
	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		child := t.ChildAt(node, i)
		cs := t.Style(child)
		if cs.IsNone() || cs.Position == style.PositionAbsolute || cs.Position == style.PositionFixed {
			continue
		}
		items = append(items, &gridItem{node: child, s: cs})
	}

	type cursor struct{ primary, secondary int }
	cur := cursor{}
	occupied := map[[2]int]bool{}

	primaryCount := func() int {
		if column {
			return rowCount
		}
		return colCount
	}

	occupy := func(rs, re, cs, ce int) {
		for r := rs; r < re; r++ {
			for c := cs; c < ce; c++ {
				occupied[[2]int{r, c}] = true
			}
		}
	}
	fits := func(rs, re, cs, ce int) bool {
		for r := rs; r < re; r++ {
			for c := cs; c < ce; c++ {
				if occupied[[2]int{r, c}] {
					return false
				}
			}
		}
		return true
	}

	for _, it := range items {
		rowSpan := resolveSpan(it.s.GridRow)
		colSpan := resolveSpan(it.s.GridColumn)

		explicitRow := !it.s.GridRow.IsAutoStart()
		explicitCol := !it.s.GridColumn.IsAutoStart()

		var rs, cs int
		if explicitRow && explicitCol {
			rs = resolveLine(it.s.GridRow.Start, rowCount)
			cs = resolveLine(it.s.GridColumn.Start, colCount)
		} else {
			// Dense packing always rescans from the top-left for the
			// earliest open hole; sparse packing resumes from where the
			// previous item left off.
			searchPrimary, searchSecondary := cur.primary, cur.secondary
			if dense {
				searchPrimary, searchSecondary = 0, 0
			}
			rs, cs = placeAuto(searchPrimary, searchSecondary, column, rowSpan, colSpan, primaryCount(), fits)
		}

		re := rs + rowSpan
		ce := cs + colSpan
		rowCount = geomMaxInt(rowCount, re)
		colCount = geomMaxInt(colCount, ce)
		occupy(rs, re, cs, ce)

		it.rowStart, it.rowEnd = rs, re
		it.colStart, it.colEnd = cs, ce

		// Advance the cursor along the fast (secondary) axis so the next
		// auto-placed item continues filling the current row/column
		// before the slow (primary) axis advances.
		if !dense {
			if column {
				cur.primary = cs
				cur.secondary = re
			} else {
				cur.primary = rs
				cur.secondary = ce
			}
		}
	}

	return items, colCount, rowCount
}

func resolveSpan(p style.GridPlacement) int {
	if p.Span > 0 {
		return p.Span
	}
	return 1
}

// resolveLine converts a 1-based GridLine (negative counts from the end)
// into a 0-based track index. Negative lines are floored at index 0;
// positive lines past the explicit grid are not clamped and extend the
// implicit grid.
func resolveLine(l style.GridLine, trackCount int) int {
	switch {
	case l > 0:
		return int(l) - 1
	case l < 0:
		idx := trackCount + int(l)
		if idx < 0 {
			idx = 0
		}
		return idx
	default:
		return 0
	}
}

// placeAuto finds the next open cell at or after (primary, secondary)
// along the auto-placement flow, growing the implicit grid when the
// current row/column runs out of room (spec.md §4.6 phase 2).
func placeAuto(primary, secondary int, column bool, rowSpan, colSpan, secondaryBound int, fits func(rs, re, cs, ce int) bool) (rowStart, colStart int) {
	p, s := primary, secondary
	if secondaryBound > 0 {
		for s >= secondaryBound {
			s -= secondaryBound
			p++
		}
	}
	for {
		var rs, cs, re, ce int
		if column {
			rs, re = s, s+rowSpan
			cs, ce = p, p+colSpan
		} else {
			rs, re = p, p+rowSpan
			cs, ce = s, s+colSpan
		}
		if fits(rs, re, cs, ce) {
			return rs, cs
		}
		s++
		if secondaryBound > 0 && s >= secondaryBound {
			s = 0
			p++
		}
	}
}

func geomMaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
