// Package stats provides significance tests, correlation and smoothing
// helpers for time series.
//
// Every function is a pure computation over its arguments and is safe to
// call concurrently on distinct inputs.
//
// # Significance Tests
//
// Compare two sample means with a t-test, passing either raw observations
// or summary statistics for each side:
//
//	lev, err := stats.SigLev(
//	    stats.RawSample{Values: control},
//	    stats.SummaryStats{Mean: 12.1, StdDev: 2.3, Count: 30},
//	    false, // separate variances
//	)
//	fmt.Printf("significance: %.1f%%\n", lev)
//
//	// One-sample test against a population mean
//	lev, err = stats.OneSampleSigLev(stats.RawSample{Values: obs}, 0)
//
// Half-width of a t-based confidence interval per ensemble group:
//
//	opts := stats.DefaultConfidenceOptions()
//	opts.Tail = stats.TwoTailed
//	widths, err := stats.ConfidenceWidth(stdDevs, counts, opts)
//
// # Correlation
//
//	// Normalised correlation over all leads and lags
//	corr, err := stats.AutoCorr(series, series)
//	peak := corr[stats.ZeroLagIndex(series.Len())]
//
//	// Pearson correlation over a sliding window
//	rc, err := stats.RunCorr(a, b, 12)
//
// # Smoothing
//
//	smoothed, err := stats.Smooth(series, 5)
//
// # Trend
//
// Mann-Kendall test for a monotonic trend:
//
//	res, err := stats.MannKendall(series)
//	if err == nil && res.PValue < 0.05 {
//	    // significant trend, direction given by the sign of res.Tau
//	}
package stats
