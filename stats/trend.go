package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/statmisc/timeseries"
)

// TrendResult represents the result of a Mann-Kendall trend test.
type TrendResult struct {
	Tau    float64 // Kendall's tau-b; close to 1 or -1 for a strong trend, 0 for none
	PValue float64 // two-sided
	N      int
}

// MannKendall tests a chronologically ordered series for a monotonic trend
// by rank-correlating it with its own index. Missing values are rejected.
// Fewer than two observations, or a constant series, give NaN for both Tau
// and PValue.
func MannKendall(series *timeseries.Series) (*TrendResult, error) {
	if series == nil {
		return nil, fmt.Errorf("series: %w", ErrEmptySeries)
	}
	if series.HasMissing() {
		return nil, fmt.Errorf("mann-kendall: %w", ErrMissingValue)
	}

	n := series.Len()
	index := make([]float64, n)
	for i := range index {
		index[i] = float64(i)
	}

	tau, p := kendallTau(index, series.Values)
	return &TrendResult{
		Tau:    tau,
		PValue: p,
		N:      n,
	}, nil
}

// MannKendallMatrix runs MannKendall on a row or column vector. Matrices
// with more than one row and column return a *timeseries.DimensionError.
func MannKendallMatrix(m mat.Matrix) (*TrendResult, error) {
	series, err := timeseries.FromMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("mann-kendall: %w", err)
	}
	return MannKendall(series)
}

// kendallTau returns Kendall's tau-b between x and y and its two-sided
// p-value. The exact null distribution is used for small samples without
// ties, the tie-corrected normal approximation otherwise.
func kendallTau(x, y []float64) (tau, p float64) {
	n := len(x)
	if n < 2 {
		return math.NaN(), math.NaN()
	}

	var con, dis float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := (x[j] - x[i]) * (y[j] - y[i])
			switch {
			case s > 0:
				con++
			case s < 0:
				dis++
			}
		}
	}

	tot := float64(n) * float64(n-1) / 2
	xt := tieCounts(x)
	yt := tieCounts(y)
	if xt.pairs == tot || yt.pairs == tot {
		return math.NaN(), math.NaN()
	}

	tau = (con - dis) / math.Sqrt(tot-xt.pairs) / math.Sqrt(tot-yt.pairs)
	tau = math.Min(1, math.Max(-1, tau))

	c := math.Min(dis, tot-dis)
	if xt.pairs == 0 && yt.pairs == 0 && (n <= 33 || c <= 1) {
		return tau, kendallExactP(n, int(c))
	}

	nf := float64(n)
	m := nf * (nf - 1)
	variance := (m*(2*nf+5)-xt.v1-yt.v1)/18 + 2*xt.pairs*yt.pairs/m
	if n > 2 {
		variance += xt.v0 * yt.v0 / (9 * m * (nf - 2))
	}
	z := (con - dis) / math.Sqrt(variance)
	return tau, 2 * normalSF(math.Abs(z))
}

// ties summarises groups of equal values; for each group of size t,
// pairs adds t(t-1)/2, v0 adds t(t-1)(t-2) and v1 adds t(t-1)(2t+5).
type ties struct {
	pairs, v0, v1 float64
}

func tieCounts(v []float64) ties {
	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)

	var out ties
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if t := float64(j - i); t > 1 {
			out.pairs += t * (t - 1) / 2
			out.v0 += t * (t - 1) * (t - 2)
			out.v1 += t * (t - 1) * (2*t + 5)
		}
		i = j
	}
	return out
}

// kendallExactP returns the two-sided p-value of observing c or fewer
// discordant pairs among n untied observations. c must not exceed half of
// the n(n-1)/2 pairs.
func kendallExactP(n, c int) float64 {
	switch {
	case n <= 2:
		return 1
	case c == 0:
		if n < 171 {
			return 2 / factorial(n)
		}
		return 0
	case c == 1:
		if n < 172 {
			return 2 / factorial(n-1)
		}
		return 0
	case 4*c == n*(n-1):
		return 1
	}

	// dist[k] counts permutations with exactly k inversions, truncated at c.
	dist := make([]float64, c+1)
	dist[0], dist[1] = 1, 1
	for j := 3; j <= n; j++ {
		for k := 1; k <= c; k++ {
			dist[k] += dist[k-1]
		}
		for k := c; k >= j; k-- {
			dist[k] -= dist[k-j]
		}
	}

	return math.Min(1, math.Max(0, 2*floats.Sum(dist)/factorial(n)))
}

func factorial(n int) float64 {
	return math.Gamma(float64(n) + 1)
}
