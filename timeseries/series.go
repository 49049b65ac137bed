// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a time series with timestamps and values.
// Missing observations are stored as NaN.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series, missing observations included.
func (s *Series) Len() int {
	return len(s.Values)
}

// HasMissing reports whether any observation is NaN.
func (s *Series) HasMissing() bool {
	return floats.HasNaN(s.Values)
}

// Valid returns the non-missing observations in order.
// The backing array is shared with the series when nothing is missing.
func (s *Series) Valid() []float64 {
	if !s.HasMissing() {
		return s.Values
	}
	valid := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	return valid
}

// Mean calculates the arithmetic mean of the non-missing observations.
// It is NaN when no observation is present.
func (s *Series) Mean() float64 {
	valid := s.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// Variance calculates the population variance (divisor n) of the
// non-missing observations.
func (s *Series) Variance() float64 {
	valid := s.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.PopVariance(valid, nil)
}

// Std calculates the population standard deviation of the non-missing
// observations.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// MovingAverage calculates a simple moving average with the given window,
// advancing one observation at a time. Each output value is the mean of its
// own window, so no rounding error carries over between windows.
// The result is empty when window is not in [1, Len()].
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.Values) {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-window+1)
	for i := range result {
		result[i] = stat.Mean(s.Values[i:i+window], nil)
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) >= window {
		copy(timestamps, s.Timestamps[window-1:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_ma",
	}
}

// Standardize returns (v - mean) / (std * scale) for every observation.
// Unlike Mean and Std, the mean and population standard deviation here are
// taken over all values, so a single missing observation makes every
// result NaN. A zero standard deviation gives NaN or Inf values.
func (s *Series) Standardize(scale float64) []float64 {
	mean := stat.Mean(s.Values, nil)
	std := math.Sqrt(stat.PopVariance(s.Values, nil))
	out := make([]float64, len(s.Values))
	copy(out, s.Values)
	floats.AddConst(-mean, out)
	floats.Scale(1/(std*scale), out)
	return out
}
