// Package statmisc provides statistical helpers for time series analysis.
//
// The library is a set of independent, stateless functions operating on one
// or two one-dimensional series:
//
//   - Two-sample t-test significance levels and t-based confidence intervals
//   - Normalised autocorrelation and cross-correlation over all lags
//   - Moving-average smoothing and running correlation
//   - Mann-Kendall trend test
//
// # Quick Start
//
//	series := timeseries.New(values)
//
//	smoothed, _ := stats.Smooth(series, 3)
//	trend, _ := stats.MannKendall(series)
//	fmt.Println(trend.Tau, trend.PValue)
//
// # Packages
//
//   - stats: Statistical tests, correlation and smoothing
//   - timeseries: Time series data structure and summary statistics
package statmisc
