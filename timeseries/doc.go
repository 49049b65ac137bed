// Package timeseries provides the time series data structure used by the
// stats package.
//
// # Creating a Series
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Missing observations are stored as NaN. Summary statistics skip them:
//
//	mean := series.Mean()
//	std := series.Std() // population standard deviation
//	if series.HasMissing() {
//	    valid := series.Valid()
//	}
//
// # Matrices
//
// Row and column vectors held in gonum matrices convert to a Series;
// anything with more than one row and column is rejected:
//
//	series, err := timeseries.FromMatrix(m)
//	var dimErr *timeseries.DimensionError
//	if errors.As(err, &dimErr) {
//	    // dimErr.Dims == 2
//	}
//
// # Transformations
//
//	ma := series.MovingAverage(7)
//	z := series.Standardize(1)  // z-scores
//	sub := series.Slice(10, 50)
package timeseries
