package stats

import "github.com/sartorproj/statmisc/timeseries"

// Sample is one side of a t-test: either RawSample or SummaryStats.
type Sample interface {
	summarize() SummaryStats
}

// RawSample holds observations. NaN entries are treated as missing when
// computing the mean and standard deviation, but still count towards the
// number of observations.
type RawSample struct {
	Values []float64
}

func (r RawSample) summarize() SummaryStats {
	s := &timeseries.Series{Values: r.Values}
	return SummaryStats{
		Mean:   s.Mean(),
		StdDev: s.Std(),
		Count:  len(r.Values),
	}
}

// SummaryStats describes a sample by its mean, population standard
// deviation and number of observations.
type SummaryStats struct {
	Mean   float64
	StdDev float64
	Count  int
}

func (s SummaryStats) summarize() SummaryStats {
	return s
}

// Summarize returns the mean, standard deviation and count of a sample.
func Summarize(s Sample) SummaryStats {
	return s.summarize()
}

// NewSample builds a Sample from optional inputs. Exactly one of values and
// summary must be set.
func NewSample(values []float64, summary *SummaryStats) (Sample, error) {
	switch {
	case values != nil && summary != nil:
		return nil, ErrAmbiguousSample
	case values != nil:
		return RawSample{Values: values}, nil
	case summary != nil:
		return *summary, nil
	default:
		return nil, ErrMissingSample
	}
}

// PopulationValue returns the sample standing in for a hypothesised
// population mean in a one-sample test.
func PopulationValue(mu float64) SummaryStats {
	return SummaryStats{Mean: mu, StdDev: 0, Count: 1}
}
