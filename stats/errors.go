package stats

import (
	"errors"
	"fmt"

	"github.com/sartorproj/statmisc/timeseries"
)

var (
	// ErrMissingSample is returned when a sample side carries neither raw
	// values nor summary statistics.
	ErrMissingSample = errors.New("either raw values or mean, std dev and count must be passed")
	// ErrAmbiguousSample is returned when raw values and summary statistics
	// are both passed for the same side.
	ErrAmbiguousSample = errors.New("raw values and mean, std dev and count cannot be passed together")
	// ErrEmptySeries is returned for a nil series or one without observations.
	ErrEmptySeries = errors.New("series is empty")
	// ErrLengthMismatch is returned when paired inputs differ in length.
	ErrLengthMismatch = errors.New("array size mismatch, pass similarly sized arrays")
	// ErrInvalidWindow is returned for a window outside [1, series length].
	ErrInvalidWindow = errors.New("window must be between 1 and the series length")
	// ErrMissingValue is returned by operations that do not accept NaN
	// observations.
	ErrMissingValue = errors.New("input contains missing values")
)

func checkSeries(name string, s *timeseries.Series) error {
	if s == nil || s.Len() == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptySeries)
	}
	return nil
}

func checkWindow(window, n int) error {
	if window < 1 || window > n {
		return fmt.Errorf("%w: got %d for length %d", ErrInvalidWindow, window, n)
	}
	return nil
}
