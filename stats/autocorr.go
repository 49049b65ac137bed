package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/statmisc/timeseries"
)

// AutoCorr correlates a with v over every lead and lag ("full" mode).
//
// Before correlating, a is centred and divided by its standard deviation
// times its length, and v is centred and divided by its standard deviation.
// This keeps the result within [-1, 1] when a and v have the same length.
// The result has len(a)+len(v)-1 values; index i holds lag i-(len(v)-1),
// so the zero lag sits at ZeroLagIndex(len(v)).
//
// A constant input has zero variance, and an input with a missing (NaN)
// observation has an undefined mean; both produce NaN at every lag.
func AutoCorr(a, v *timeseries.Series) ([]float64, error) {
	if err := checkSeries("a", a); err != nil {
		return nil, err
	}
	if err := checkSeries("v", v); err != nil {
		return nil, err
	}

	an := a.Standardize(float64(a.Len()))
	vn := v.Standardize(1)
	return correlateFull(an, vn), nil
}

// correlateFull computes c[k] = sum_n a[n+k]*v[n] for k = -(len(v)-1) .. len(a)-1.
func correlateFull(a, v []float64) []float64 {
	na, nv := len(a), len(v)
	out := make([]float64, na+nv-1)
	for i := range out {
		k := i - (nv - 1)
		if k >= 0 {
			n := min(na-k, nv)
			out[i] = floats.Dot(a[k:k+n], v[:n])
		} else {
			n := min(na, nv+k)
			out[i] = floats.Dot(a[:n], v[-k:-k+n])
		}
	}
	return out
}

// CorrLags returns the lag of each value returned by AutoCorr for inputs of
// length na and nv.
func CorrLags(na, nv int) []int {
	if na < 1 || nv < 1 {
		return nil
	}
	lags := make([]int, na+nv-1)
	for i := range lags {
		lags[i] = i - (nv - 1)
	}
	return lags
}

// ZeroLagIndex returns the index of lag 0 in the AutoCorr output.
func ZeroLagIndex(nv int) int {
	return nv - 1
}
