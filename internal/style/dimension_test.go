package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelplayout/kelp/internal/style"
)

func TestDimensionResolve(t *testing.T) {
	parent := float32(200)

	v := style.Length(50).Resolve(&parent)
	require.NotNil(t, v)
	require.Equal(t, float32(50), *v)

	v = style.Percent(0.5).Resolve(&parent)
	require.NotNil(t, v)
	require.Equal(t, float32(100), *v)

	require.Nil(t, style.Percent(0.5).Resolve(nil))
	require.Nil(t, style.Auto().Resolve(&parent))
}

func TestLengthPercentageUnresolvedIsZero(t *testing.T) {
	require.Equal(t, float32(0), style.LPPercent(0.5).Resolve(nil))
	require.Equal(t, float32(10), style.LPLength(10).Resolve(nil))
}

func TestClampMaxOverridesMin(t *testing.T) {
	min := float32(100)
	max := float32(50)
	require.Equal(t, float32(50), style.Clamp(75, &min, &max))
}

func TestAvailableSpaceMaybeSub(t *testing.T) {
	def := style.Definite(100)
	require.Equal(t, style.Definite(40), def.MaybeSub(60))
	require.Equal(t, style.Definite(0), def.MaybeSub(1000))
	require.Equal(t, style.MinContentSpace, style.MinContentSpace.MaybeSub(10))
}
