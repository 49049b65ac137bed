package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/statmisc/timeseries"
)

func TestRunCorr(t *testing.T) {
	x := []float64{1, 3, 2, 5, 4, 6}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}

	corr, err := RunCorr(timeseries.New(x), timeseries.New(y), 4)
	require.NoError(t, err)
	require.Len(t, corr, 3)
	for _, c := range corr {
		assert.InDelta(t, 1.0, c, 1e-12)
	}
}

func TestRunCorrWindowSlice(t *testing.T) {
	// The last observation falls outside the only window's slice, so the
	// outlier does not affect the result.
	x := timeseries.New([]float64{1, 2, 3, 4})
	y := timeseries.New([]float64{1, 2, 3, -10})

	corr, err := RunCorr(x, y, 4)
	require.NoError(t, err)
	require.Len(t, corr, 1)
	assert.InDelta(t, 1.0, corr[0], 1e-12)
}

func TestRunCorrAnticorrelated(t *testing.T) {
	x := timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7})
	y := timeseries.New([]float64{7, 6, 5, 4, 3, 2, 1})

	corr, err := RunCorr(x, y, 3)
	require.NoError(t, err)
	require.Len(t, corr, 5)
	for _, c := range corr {
		assert.InDelta(t, -1.0, c, 1e-12)
	}
}

func TestRunCorrShortWindow(t *testing.T) {
	x := timeseries.New([]float64{1, 2, 3})
	corr, err := RunCorr(x, x, 2)
	require.NoError(t, err)
	require.Len(t, corr, 2)
	for _, c := range corr {
		assert.True(t, math.IsNaN(c))
	}
}

func TestRunCorrMissingValue(t *testing.T) {
	x := timeseries.New([]float64{1, 2, 3, math.NaN(), 5, 6, 7, 8})
	y := timeseries.New([]float64{2, 4, 6, 8, 10, 12, 14, 16})

	// window 4 correlates slices of three: [0,3) [1,4) [2,5) [3,6) [4,7)
	corr, err := RunCorr(x, y, 4)
	require.NoError(t, err)
	require.Len(t, corr, 5)
	assert.InDelta(t, 1.0, corr[0], 1e-12)
	for i := 1; i <= 3; i++ {
		assert.True(t, math.IsNaN(corr[i]), "window %d: got %v", i, corr[i])
	}
	assert.InDelta(t, 1.0, corr[4], 1e-12)
}

func TestRunCorrErrors(t *testing.T) {
	a := timeseries.New([]float64{1, 2, 3, 4})
	b := timeseries.New([]float64{1, 2, 3})

	_, err := RunCorr(a, b, 2)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = RunCorr(a, a, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = RunCorr(a, a, 5)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = RunCorr(nil, a, 2)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
