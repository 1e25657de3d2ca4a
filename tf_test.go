package tabulatedfunction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddPoint(t *testing.T) {
	direct, err := New(NewPoint(1.156694013301916, 0.5), NewPoint(2.0494472732002826, 0.1))
	require.NoError(t, err)

	require.NoError(t, direct.AddPoint(NewPoint(0.46530775203579466, 0.1)))
	require.NoError(t, direct.AddPoint(NewPoint(-1.1237643368175254, 0.1)))
	require.NoError(t, direct.AddPoint(NewPoint(2.5864746065598427, 0.5)))
	t.Logf("%v\n", direct)

	require.Equal(t, 5, direct.PointCount())
	assertIncreasing(t, direct)
	assert.Equal(t, -1.1237643368175254, direct.LeftBorder())
	assert.Equal(t, 2.5864746065598427, direct.RightBorder())

	assert.Equal(t, 0.1, direct.F(2.0494472732002826))
	assert.Equal(t, 0.5, direct.F(1.156694013301916))
	assert.Equal(t, 0.1, direct.F(-1.1237643368175254))
	assert.Equal(t, 0.5, direct.F(2.5864746065598427))
	assert.True(t, math.IsNaN(direct.F(-2)))
	assert.True(t, math.IsNaN(direct.F(3)))

	want := 0.1 + 0.4*(2.4-2.0494472732002826)/(2.5864746065598427-2.0494472732002826)
	assert.InDelta(t, want, direct.F(2.4), 1e-15)
	assert.InDelta(t, 0.361106, direct.F(2.4), 1e-6)
}

// assertIncreasing checks the table invariants through the public API.
func assertIncreasing(t *testing.T, f *TabulatedFunction) {
	t.Helper()
	require.GreaterOrEqual(t, f.PointCount(), 2)
	prev, err := f.PointX(0)
	require.NoError(t, err)
	assert.Equal(t, prev, f.LeftBorder())
	for i := 1; i < f.PointCount(); i++ {
		x, err := f.PointX(i)
		require.NoError(t, err)
		assert.Less(t, prev, x, "x values must increase at index %d", i)
		prev = x
	}
	assert.Equal(t, prev, f.RightBorder())
}
