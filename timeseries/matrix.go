package timeseries

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotOneDimensional is matched by every *DimensionError.
var ErrNotOneDimensional = errors.New("only 1D arrays expected")

// DimensionError reports input that is not a one-dimensional sequence.
type DimensionError struct {
	Dims int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("only 1D arrays expected, %dD array was passed", e.Dims)
}

// Is makes errors.Is(err, ErrNotOneDimensional) succeed.
func (e *DimensionError) Is(target error) bool {
	return target == ErrNotOneDimensional
}

// FromVector creates a series holding the elements of v.
func FromVector(v mat.Vector) *Series {
	values := make([]float64, v.Len())
	for i := range values {
		values[i] = v.AtVec(i)
	}
	return New(values)
}

// FromMatrix creates a series from a row or column vector held in a matrix.
// A matrix with more than one row and more than one column is rejected with
// a *DimensionError.
func FromMatrix(m mat.Matrix) (*Series, error) {
	if v, ok := m.(mat.Vector); ok {
		return FromVector(v), nil
	}

	r, c := m.Dims()
	switch {
	case r == 1:
		return New(mat.Row(nil, 0, m)), nil
	case c == 1:
		return New(mat.Col(nil, 0, m)), nil
	default:
		return nil, &DimensionError{Dims: 2}
	}
}

// Dims returns the number of dimensions of m when read as an array:
// 1 for row or column vectors, 2 otherwise.
func Dims(m mat.Matrix) int {
	if _, ok := m.(mat.Vector); ok {
		return 1
	}
	r, c := m.Dims()
	if r == 1 || c == 1 {
		return 1
	}
	return 2
}
