package kelp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelplayout/kelp"
	"github.com/kelplayout/kelp/internal/core/geom"
)

// mockNode is one entry in a mockTree, grounded on the teacher's own
// slice-backed shape list (instructions/group.go's []BoundedShape) rather
// than a pointer-linked DOM.
type mockNode struct {
	style    kelp.Style
	children []kelp.NodeID
	measure  kelp.MeasureFunc
	cache    kelp.Cache
	layout   kelp.LayoutResult
}

// mockTree is a minimal kelp.Tree backed by a flat slice, used across the
// package's end-to-end scenario tests (spec.md §8 S1-S6). It plays the
// same role the teacher's mockShape plays in instructions/tests: a
// verification fixture, not production code.
type mockTree struct {
	nodes []*mockNode
}

func newMockTree() *mockTree { return &mockTree{} }

func (t *mockTree) add(s kelp.Style, children ...kelp.NodeID) kelp.NodeID {
	t.nodes = append(t.nodes, &mockNode{style: s, children: children})
	return kelp.NodeID(len(t.nodes) - 1)
}

func (t *mockTree) addLeaf(s kelp.Style, measure kelp.MeasureFunc) kelp.NodeID {
	t.nodes = append(t.nodes, &mockNode{style: s, measure: measure})
	return kelp.NodeID(len(t.nodes) - 1)
}

func (t *mockTree) ChildCount(node kelp.NodeID) int { return len(t.nodes[node].children) }
func (t *mockTree) ChildAt(node kelp.NodeID, i int) kelp.NodeID {
	return t.nodes[node].children[i]
}
func (t *mockTree) Style(node kelp.NodeID) *kelp.Style   { return &t.nodes[node].style }
func (t *mockTree) Cache(node kelp.NodeID) *kelp.Cache   { return &t.nodes[node].cache }
func (t *mockTree) LayoutMut(node kelp.NodeID) *kelp.LayoutResult {
	return &t.nodes[node].layout
}
func (t *mockTree) Measure(node kelp.NodeID) kelp.MeasureFunc { return t.nodes[node].measure }

func (t *mockTree) result(node kelp.NodeID) kelp.LayoutResult { return t.nodes[node].layout }

func fixedSize(w, h float32) kelp.MeasureFunc {
	return func(known geom.Size[*float32], _ geom.Size[kelp.AvailableSpace]) geom.Size[float32] {
		size := geom.Size[float32]{Width: w, Height: h}
		if known.Width != nil {
			size.Width = *known.Width
		}
		if known.Height != nil {
			size.Height = *known.Height
		}
		return size
	}
}

func px(v float32) kelp.AvailableSpace { return kelp.Definite(v) }

// S1 — block, fixed width.
func TestScenarioBlockFixedWidth(t *testing.T) {
	tr := newMockTree()
	a := tr.addLeaf(kelp.Style{Display: kelp.DisplayBlock, Size: geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(20)}}, fixedSize(0, 20))
	b := tr.addLeaf(kelp.Style{Display: kelp.DisplayBlock, Size: geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(40)}}, fixedSize(0, 40))
	root := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Length(300), Height: kelp.Auto()},
	}, a, b)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	rootRes := tr.result(root)
	require.Equal(t, geom.Size[float32]{Width: 300, Height: 60}, rootRes.Size)

	aRes := tr.result(a)
	require.Equal(t, geom.Point[float32]{X: 0, Y: 0}, aRes.Location)
	require.Equal(t, geom.Size[float32]{Width: 300, Height: 20}, aRes.Size)

	bRes := tr.result(b)
	require.Equal(t, geom.Point[float32]{X: 0, Y: 20}, bRes.Location)
	require.Equal(t, geom.Size[float32]{Width: 300, Height: 40}, bRes.Size)
}

// S2 — flex row with grow.
func TestScenarioFlexRowGrow(t *testing.T) {
	tr := newMockTree()
	a := tr.add(kelp.Style{Display: kelp.DisplayBlock, FlexGrow: 1, FlexShrink: 1, FlexBasis: kelp.Auto(), Size: geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Auto()}})
	b := tr.add(kelp.Style{Display: kelp.DisplayBlock, FlexGrow: 2, FlexShrink: 1, FlexBasis: kelp.Auto(), Size: geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Auto()}})
	root := tr.add(kelp.Style{
		Display:        kelp.DisplayFlex,
		FlexDirection:  kelp.FlexRow,
		JustifyContent: kelp.JustifyStart,
		AlignItems:     kelp.AlignStretch,
		FlexWrap:       kelp.NoWrap,
		Size:           geom.Size[kelp.Dimension]{Width: kelp.Length(300), Height: kelp.Length(50)},
	}, a, b)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	rootRes := tr.result(root)
	require.Equal(t, geom.Size[float32]{Width: 300, Height: 50}, rootRes.Size)

	aRes := tr.result(a)
	require.Equal(t, geom.Point[float32]{X: 0, Y: 0}, aRes.Location)
	require.Equal(t, geom.Size[float32]{Width: 100, Height: 50}, aRes.Size)

	bRes := tr.result(b)
	require.Equal(t, geom.Point[float32]{X: 100, Y: 0}, bRes.Location)
	require.Equal(t, geom.Size[float32]{Width: 200, Height: 50}, bRes.Size)
}

// S3 — flex wrap.
func TestScenarioFlexWrap(t *testing.T) {
	tr := newMockTree()
	var children []kelp.NodeID
	for i := 0; i < 6; i++ {
		children = append(children, tr.add(kelp.Style{
			Display: kelp.DisplayBlock,
			Size:    geom.Size[kelp.Dimension]{Width: kelp.Length(80), Height: kelp.Length(30)},
		}))
	}
	root := tr.add(kelp.Style{
		Display:       kelp.DisplayFlex,
		FlexDirection: kelp.FlexRow,
		FlexWrap:      kelp.Wrap,
		Size:          geom.Size[kelp.Dimension]{Width: kelp.Length(200), Height: kelp.Auto()},
	}, children...)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	rootRes := tr.result(root)
	require.Equal(t, geom.Size[float32]{Width: 200, Height: 90}, rootRes.Size)

	wantLocations := []geom.Point[float32]{
		{X: 0, Y: 0}, {X: 80, Y: 0},
		{X: 0, Y: 30}, {X: 80, Y: 30},
		{X: 0, Y: 60}, {X: 80, Y: 60},
	}
	for i, child := range children {
		require.Equal(t, wantLocations[i], tr.result(child).Location, "child %d", i)
	}
}

// S5 — margin collapse: B's top margin collapses with A's bottom margin to
// the larger of the two, not their sum.
func TestScenarioMarginCollapse(t *testing.T) {
	tr := newMockTree()
	a := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(10)},
		Margin:  geom.Rect[kelp.LengthPercentageAuto]{Top: kelp.LPAAuto(), Bottom: kelp.LPALength(20), Left: kelp.LPAAuto(), Right: kelp.LPAAuto()},
	})
	b := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(10)},
		Margin:  geom.Rect[kelp.LengthPercentageAuto]{Top: kelp.LPALength(30), Bottom: kelp.LPAAuto(), Left: kelp.LPAAuto(), Right: kelp.LPAAuto()},
	})
	root := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Length(100), Height: kelp.Auto()},
	}, a, b)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	require.Equal(t, float32(0), tr.result(a).Location.Y)
	require.Equal(t, float32(40), tr.result(b).Location.Y, "collapsed margin should be max(20,30), not 20+30")
}

// S6 — aspect ratio.
func TestScenarioAspectRatio(t *testing.T) {
	tr := newMockTree()
	ratio := float32(2)
	root := tr.add(kelp.Style{
		Display:     kelp.DisplayBlock,
		BoxSizing:   kelp.ContentBox,
		Size:        geom.Size[kelp.Dimension]{Width: kelp.Length(100), Height: kelp.Auto()},
		AspectRatio: &ratio,
	})

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	require.Equal(t, geom.Size[float32]{Width: 100, Height: 50}, tr.result(root).Size)
}

// S4 — grid template with a fixed column and a 1fr column.
func TestScenarioGridTemplate(t *testing.T) {
	tr := newMockTree()
	var children []kelp.NodeID
	for i := 0; i < 4; i++ {
		children = append(children, tr.add(kelp.Style{
			Display: kelp.DisplayBlock,
			Size:    geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(20)},
		}))
	}
	root := tr.add(kelp.Style{
		Display:             kelp.DisplayGrid,
		GridTemplateColumns: []kelp.TrackSizingFunction{kelp.FixedTrack(kelp.LPLength(100)), kelp.FlexTrack(1)},
		GridTemplateRows:    []kelp.TrackSizingFunction{kelp.AutoTrack(), kelp.AutoTrack()},
		Gap:                 geom.Size[kelp.LengthPercentage]{Width: kelp.LPLength(10), Height: kelp.LPLength(10)},
		Size:                geom.Size[kelp.Dimension]{Width: kelp.Length(300), Height: kelp.Auto()},
	}, children...)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	require.Equal(t, float32(300), tr.result(root).Size.Width)

	require.Equal(t, geom.Point[float32]{X: 0, Y: 0}, tr.result(children[0]).Location)
	require.Equal(t, float32(110), tr.result(children[1]).Location.X)
	require.Equal(t, float32(0), tr.result(children[1]).Location.Y)
	require.Equal(t, float32(0), tr.result(children[2]).Location.X)
	require.Equal(t, float32(110), tr.result(children[3]).Location.X)
	require.Equal(t, tr.result(children[2]).Location.Y, tr.result(children[3]).Location.Y)
	require.Greater(t, tr.result(children[2]).Location.Y, tr.result(children[0]).Location.Y)
	require.InDelta(t, float32(30), tr.result(children[2]).Location.Y, 0.01, "row0 height 20 + gap 10")
}

// S7 — flex item margin:auto on the main axis absorbs free space instead of
// justify-content packing the item (spec.md §4.5 step 7).
func TestScenarioFlexMainAxisAutoMargin(t *testing.T) {
	tr := newMockTree()
	a := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Length(50), Height: kelp.Length(50)},
		Margin:  geom.Rect[kelp.LengthPercentageAuto]{Top: kelp.LPALength(0), Bottom: kelp.LPALength(0), Left: kelp.LPAAuto(), Right: kelp.LPALength(0)},
	})
	root := tr.add(kelp.Style{
		Display:        kelp.DisplayFlex,
		FlexDirection:  kelp.FlexRow,
		JustifyContent: kelp.JustifyStart,
		Size:           geom.Size[kelp.Dimension]{Width: kelp.Length(300), Height: kelp.Length(50)},
	}, a)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	aRes := tr.result(a)
	require.Equal(t, geom.Size[float32]{Width: 50, Height: 50}, aRes.Size)
	require.Equal(t, float32(250), aRes.Location.X, "margin-left:auto should push the item flush to the end, overriding justify-content")
}

// S8 — margin collapse-through: a container with no border/padding passes
// its first child's top margin and last child's bottom margin through as
// its own, rather than keeping them as internal gaps (CSS 2.1 §8.3.1 steps
// 2c & 4).
func TestScenarioMarginCollapseThrough(t *testing.T) {
	tr := newMockTree()
	inner := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(5)},
		Margin:  geom.Rect[kelp.LengthPercentageAuto]{Top: kelp.LPALength(0), Bottom: kelp.LPALength(40), Left: kelp.LPAAuto(), Right: kelp.LPAAuto()},
	})
	outer := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Auto()},
		Margin:  geom.Rect[kelp.LengthPercentageAuto]{Top: kelp.LPALength(0), Bottom: kelp.LPALength(10), Left: kelp.LPAAuto(), Right: kelp.LPAAuto()},
	}, inner)
	tail := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Length(5)},
		Margin:  geom.Rect[kelp.LengthPercentageAuto]{Top: kelp.LPALength(0), Bottom: kelp.LPALength(0), Left: kelp.LPAAuto(), Right: kelp.LPAAuto()},
	})
	root := tr.add(kelp.Style{
		Display: kelp.DisplayBlock,
		Size:    geom.Size[kelp.Dimension]{Width: kelp.Length(200), Height: kelp.Auto()},
	}, outer, tail)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	require.Equal(t, float32(0), tr.result(outer).Location.Y)
	require.Equal(t, float32(0), tr.result(inner).Location.Y, "inner's top margin collapses through outer, no internal gap")
	require.Equal(t, float32(5), tr.result(outer).Size.Height, "outer's auto height excludes the collapsed-through margins")
	require.Equal(t, float32(45), tr.result(tail).Location.Y, "outer's bottom margin (10) collapses with inner's (40) to 40, plus inner's own 5px height")
}

// Finiteness invariant (spec.md §8 property 1): every reachable node has a
// finite, non-negative size after a pass, even for a deeply indefinite
// input (no known dims, auto sizes all the way down).
func TestInvariantFinitenessOnIndefiniteTree(t *testing.T) {
	tr := newMockTree()
	leaf := tr.addLeaf(kelp.DefaultStyle(), fixedSize(10, 10))
	root := tr.add(kelp.DefaultStyle(), leaf)

	kelp.ComputeRootLayout(tr, root, geom.Size[kelp.AvailableSpace]{Width: kelp.MaxContentSpace, Height: kelp.MaxContentSpace})

	for _, n := range []kelp.NodeID{root, leaf} {
		res := tr.result(n)
		require.GreaterOrEqual(t, res.Size.Width, float32(0))
		require.GreaterOrEqual(t, res.Size.Height, float32(0))
		require.False(t, res.Size.Width != res.Size.Width, "NaN width")
		require.False(t, res.Size.Height != res.Size.Height, "NaN height")
	}
}

// Determinism (spec.md §8 property 5): two passes over the same tree and
// viewport produce identical results.
func TestInvariantDeterminism(t *testing.T) {
	build := func() (*mockTree, kelp.NodeID) {
		tr := newMockTree()
		a := tr.add(kelp.Style{Display: kelp.DisplayBlock, FlexGrow: 1, Size: geom.Size[kelp.Dimension]{Width: kelp.Auto(), Height: kelp.Auto()}})
		root := tr.add(kelp.Style{
			Display: kelp.DisplayFlex,
			Size:    geom.Size[kelp.Dimension]{Width: kelp.Length(200), Height: kelp.Length(40)},
		}, a)
		return tr, root
	}

	t1, r1 := build()
	kelp.ComputeRootLayout(t1, r1, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})
	t2, r2 := build()
	kelp.ComputeRootLayout(t2, r2, geom.Size[kelp.AvailableSpace]{Width: px(800), Height: px(600)})

	require.Equal(t, t1.result(r1), t2.result(r2))
}
