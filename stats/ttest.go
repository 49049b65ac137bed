package stats

import (
	"fmt"
	"math"
)

// SigLev runs an unpaired two-sample t-test on x and y and returns the
// two-tailed significance level in percent.
//
// With pooled set the variances are pooled (equal population variances
// assumed); otherwise separate (Welch) variances are used. Degenerate
// inputs such as zero variance with equal means, or fewer than one degree
// of freedom, produce NaN rather than an error.
func SigLev(x, y Sample, pooled bool) (float64, error) {
	if x == nil {
		return 0, fmt.Errorf("x: %w", ErrMissingSample)
	}
	if y == nil {
		return 0, fmt.Errorf("y: %w", ErrMissingSample)
	}

	sx, sy := x.summarize(), y.summarize()
	nx, ny := float64(sx.Count), float64(sy.Count)
	dof := nx + ny - 2

	var denom float64
	if pooled {
		denom = ((nx-1)*sx.StdDev*sx.StdDev + (ny-1)*sy.StdDev*sy.StdDev) / dof * (nx + ny) / (nx * ny)
	} else {
		denom = sx.StdDev*sx.StdDev/nx + sy.StdDev*sy.StdDev/ny
	}
	t := math.Abs(sx.Mean-sy.Mean) / math.Sqrt(denom)

	clev := studentTCDF(t, dof)
	clev = (1 - clev) * 2
	clev = (1 - clev) * 100
	return clev, nil
}

// OneSampleSigLev tests the mean of x against the population mean mu.
func OneSampleSigLev(x Sample, mu float64) (float64, error) {
	return SigLev(x, PopulationValue(mu), false)
}
