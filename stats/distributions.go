package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// studentTCDF returns P(T <= t) for a Student t distribution with nu
// degrees of freedom. Degenerate arguments give NaN.
func studentTCDF(t, nu float64) float64 {
	if math.IsNaN(t) || math.IsNaN(nu) || nu <= 0 {
		return math.NaN()
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}.CDF(t)
}

// studentTQuantile is the inverse of studentTCDF.
func studentTQuantile(p, nu float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 || math.IsNaN(nu) || nu <= 0 {
		return math.NaN()
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}.Quantile(p)
}

// normalSF is the survival function of the standard normal distribution.
func normalSF(z float64) float64 {
	return distuv.UnitNormal.Survival(z)
}
