package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/statmisc/timeseries"
)

func TestAutoCorrSelf(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = math.Sin(float64(i)/4) + float64(i%3)
	}
	s := timeseries.New(values)

	corr, err := AutoCorr(s, s)
	require.NoError(t, err)
	require.Len(t, corr, 2*len(values)-1)

	zero := ZeroLagIndex(s.Len())
	assert.InDelta(t, 1.0, corr[zero], 1e-10)
	for k := 1; k < len(values); k++ {
		assert.InDelta(t, corr[zero-k], corr[zero+k], 1e-10, "lag %d", k)
		assert.LessOrEqual(t, math.Abs(corr[zero+k]), 1.0+1e-10)
	}
}

func TestAutoCorrKnownValues(t *testing.T) {
	a := timeseries.New([]float64{1, 2, 3})
	v := timeseries.New([]float64{1, 2, 3})

	// both normalise to z = [-1, 0, 1]*sqrt(3/2); a is further divided by 3
	corr, err := AutoCorr(a, v)
	require.NoError(t, err)
	expected := []float64{-0.5, 0, 1, 0, -0.5}
	require.Len(t, corr, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], corr[i], 1e-12, "index %d", i)
	}
}

func TestAutoCorrLength(t *testing.T) {
	a := timeseries.New([]float64{1, 4, 2, 8, 5, 7})
	v := timeseries.New([]float64{3, 1, 2})

	corr, err := AutoCorr(a, v)
	require.NoError(t, err)
	assert.Len(t, corr, 8)

	corr, err = AutoCorr(v, a)
	require.NoError(t, err)
	assert.Len(t, corr, 8)
}

func TestAutoCorrEmpty(t *testing.T) {
	s := timeseries.New([]float64{1, 2})
	_, err := AutoCorr(timeseries.New(nil), s)
	assert.ErrorIs(t, err, ErrEmptySeries)
	_, err = AutoCorr(s, nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestAutoCorrConstant(t *testing.T) {
	s := timeseries.New([]float64{2, 2, 2})
	corr, err := AutoCorr(s, s)
	require.NoError(t, err)
	for _, c := range corr {
		assert.True(t, math.IsNaN(c))
	}
}

func TestAutoCorrMissingValue(t *testing.T) {
	a := timeseries.New([]float64{1, 2, math.NaN(), 4, 5})
	v := timeseries.New([]float64{1, 2, 3})

	corr, err := AutoCorr(a, v)
	require.NoError(t, err)
	require.Len(t, corr, 7)
	for i, c := range corr {
		assert.True(t, math.IsNaN(c), "index %d: got %v", i, c)
	}

	corr, err = AutoCorr(v, a)
	require.NoError(t, err)
	for i, c := range corr {
		assert.True(t, math.IsNaN(c), "index %d: got %v", i, c)
	}
}

func TestCorrelateFull(t *testing.T) {
	got := correlateFull([]float64{1, 2, 3}, []float64{0, 1, 0.5})
	assert.Equal(t, []float64{0.5, 2, 3.5, 3, 0}, got)
}

func TestCorrLags(t *testing.T) {
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3}, CorrLags(4, 3))
	assert.Equal(t, 2, ZeroLagIndex(3))
	assert.Nil(t, CorrLags(0, 3))
}
