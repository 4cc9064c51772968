package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
	"github.com/kelplayout/kelp/internal/tree"
)

func input(w float32) tree.LayoutInput {
	return tree.LayoutInput{
		RunMode:        tree.ComputeSize,
		SizingMode:     tree.ContentSize,
		AvailableSpace: geom.Size[style.AvailableSpace]{Width: style.Definite(w), Height: style.MaxContentSpace},
	}
}

func TestCacheHitAfterPut(t *testing.T) {
	var c tree.Cache
	in := input(100)
	out := tree.LayoutOutput{Size: geom.Size[float32]{Width: 100, Height: 20}}

	_, ok := c.Get(in)
	require.False(t, ok)

	c.Put(in, out)
	got, ok := c.Get(in)
	require.True(t, ok)
	require.Equal(t, out, got)
}

func TestCacheMissOnDifferentKey(t *testing.T) {
	var c tree.Cache
	c.Put(input(100), tree.LayoutOutput{})
	_, ok := c.Get(input(200))
	require.False(t, ok)
}

func TestCacheInvalidateDropsHits(t *testing.T) {
	var c tree.Cache
	in := input(100)
	c.Put(in, tree.LayoutOutput{})

	c.Invalidate()
	_, ok := c.Get(in)
	require.False(t, ok)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var c tree.Cache
	for i := 0; i < 4; i++ {
		c.Put(input(float32(i)), tree.LayoutOutput{Size: geom.Size[float32]{Width: float32(i)}})
	}
	// Touch every slot but the first, so index 0 becomes least recently used.
	for i := 1; i < 4; i++ {
		_, ok := c.Get(input(float32(i)))
		require.True(t, ok)
	}
	c.Put(input(999), tree.LayoutOutput{})

	_, ok := c.Get(input(0))
	require.False(t, ok, "least recently used slot should have been evicted")
	for i := 1; i < 4; i++ {
		_, ok := c.Get(input(float32(i)))
		require.True(t, ok)
	}
}

func TestCollapsibleMarginCollapse(t *testing.T) {
	require.Equal(t, tree.CollapsibleMargin{Value: 30}, tree.CollapsibleMargin{Value: 20}.Collapse(tree.CollapsibleMargin{Value: 30}))
	require.Equal(t, tree.CollapsibleMargin{Value: -30}, tree.CollapsibleMargin{Value: -20}.Collapse(tree.CollapsibleMargin{Value: -30}))
	require.Equal(t, tree.CollapsibleMargin{Value: 10}, tree.CollapsibleMargin{Value: -20}.Collapse(tree.CollapsibleMargin{Value: 30}))
}
