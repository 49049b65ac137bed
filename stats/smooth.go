package stats

import (
	"github.com/sartorproj/statmisc/timeseries"
)

// Smooth applies a moving average of the given window, advancing one
// observation at a time. Value i is the mean of series[i : i+window], so the
// result holds Len()-window+1 values, each stamped with the time of the last
// observation in its window.
func Smooth(series *timeseries.Series, window int) (*timeseries.Series, error) {
	if err := checkSeries("series", series); err != nil {
		return nil, err
	}
	if err := checkWindow(window, series.Len()); err != nil {
		return nil, err
	}

	smoothed := series.MovingAverage(window)
	smoothed.Name = series.Name + "_smooth"
	return smoothed, nil
}
