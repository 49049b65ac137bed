package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/statmisc/timeseries"
)

// RunCorr computes the running Pearson correlation between x and y.
// The result holds Len()-window+1 values.
//
// Correlation i is taken over observations [i, i+window-1), one fewer than
// window. Windows holding fewer than two observations, or a constant
// observation, yield NaN. A missing (NaN) observation makes every window
// whose slice contains it NaN.
func RunCorr(x, y *timeseries.Series, window int) ([]float64, error) {
	if err := checkSeries("x", x); err != nil {
		return nil, err
	}
	if err := checkSeries("y", y); err != nil {
		return nil, err
	}
	n := x.Len()
	if n != y.Len() {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, n, y.Len())
	}
	if err := checkWindow(window, n); err != nil {
		return nil, err
	}

	corr := make([]float64, n-window+1)
	for i := range corr {
		start, end := i, i+window-1
		if end-start < 2 {
			corr[i] = math.NaN()
			continue
		}
		corr[i] = stat.Correlation(x.Values[start:end], y.Values[start:end], nil)
	}
	return corr, nil
}
