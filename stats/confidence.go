package stats

import (
	"fmt"
	"math"
)

// Tail selects a one- or two-sided confidence interval.
type Tail int

const (
	// OneTailed looks up the confidence level itself. The zero Tail is
	// treated as OneTailed.
	OneTailed Tail = 1
	// TwoTailed splits 1-Level evenly between both tails.
	TwoTailed Tail = 2
)

// ConfidenceOptions configures ConfidenceWidth.
type ConfidenceOptions struct {
	Level float64 // confidence level, e.g. 0.95
	Tail  Tail    // zero value means OneTailed
}

// DefaultConfidenceOptions returns a one-tailed 95% interval.
func DefaultConfidenceOptions() ConfidenceOptions {
	return ConfidenceOptions{
		Level: 0.95,
		Tail:  OneTailed,
	}
}

// effectiveLevel is the quantile looked up in the t distribution.
// Any tail other than OneTailed or the zero Tail is treated as two-tailed.
func (o ConfidenceOptions) effectiveLevel() float64 {
	if o.Tail == OneTailed || o.Tail == 0 {
		return o.Level
	}
	return 1 - (1-o.Level)/2
}

// ConfidenceWidth returns the half-width of the t-based confidence interval
// for every group described by stdDev[i] and count[i]. The interval is
// symmetric, so the bounds are mean ± width.
//
// Groups with fewer than two members have no degrees of freedom and yield NaN.
func ConfidenceWidth(stdDev []float64, count []int, opts ConfidenceOptions) ([]float64, error) {
	if len(stdDev) != len(count) {
		return nil, fmt.Errorf("%w: %d std devs, %d counts", ErrLengthMismatch, len(stdDev), len(count))
	}

	widths := make([]float64, len(stdDev))
	for i := range stdDev {
		widths[i] = ConfidenceWidthScalar(stdDev[i], count[i], opts)
	}
	return widths, nil
}

// ConfidenceWidthScalar is ConfidenceWidth for a single group.
func ConfidenceWidthScalar(stdDev float64, count int, opts ConfidenceOptions) float64 {
	n := float64(count)
	stdErr := stdDev / math.Sqrt(n)
	return studentTQuantile(opts.effectiveLevel(), n-1) * stdErr
}
