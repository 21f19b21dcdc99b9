package preprocess

import (
	"fmt"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
	"github.com/andyglick/orange3/stats"
)

// EqualWidth discretizes into bins of equal width over the observed or
// a fixed value range.
type EqualWidth struct {
	// N is the number of bins. Zero selects the default of four,
	// negative values fail validation.
	N int
}

var _ FixedRangeDiscretization = (*EqualWidth)(nil)

// NewEqualWidth creates the strategy with the given number of bins.
func NewEqualWidth(n int) *EqualWidth {
	return &EqualWidth{N: n}
}

// String returns a short description of the strategy.
func (e *EqualWidth) String() string {
	return fmt.Sprintf("EqualWidth(n=%d)", e.bins())
}

func (e *EqualWidth) bins() int {
	if e.N == 0 {
		return 4
	}
	return e.N
}

// Discretize computes equally spaced cut points between the smallest
// and largest observed value of v. A backend implementing
// stats.RangeSource supplies the extrema without a column scan.
func (e *EqualWidth) Discretize(src stats.Source, v data.Variable) (*data.DiscreteVariable, error) {
	n := e.bins()
	if n < 1 {
		return nil, errors.NewValidationError("n", "number of bins must be at least 1", e.N)
	}

	var points []float64
	if rs, ok := src.(stats.RangeSource); ok {
		lo, hi, err := rs.Range(v)
		if err != nil {
			return nil, err
		}
		points, err = CutPointsEqualWidthFixed(lo, hi, n)
		if err != nil {
			return nil, err
		}
	} else {
		dist, err := stats.GetDistribution(src, v)
		if err != nil {
			return nil, err
		}
		points, err = CutPointsEqualWidth(dist, n)
		if err != nil {
			return nil, err
		}
	}
	return NewDiscretizedVariable(v, points), nil
}

// DiscretizeFixed computes equally spaced cut points over the supplied
// range instead of the observed one.
func (e *EqualWidth) DiscretizeFixed(src stats.Source, v data.Variable, min, max float64) (*data.DiscreteVariable, error) {
	n := e.bins()
	if n < 1 {
		return nil, errors.NewValidationError("n", "number of bins must be at least 1", e.N)
	}
	points, err := CutPointsEqualWidthFixed(min, max, n)
	if err != nil {
		return nil, err
	}
	return NewDiscretizedVariable(v, points), nil
}

// CutPointsEqualWidth returns n-1 equally spaced cut points between the
// smallest and largest value of the distribution. A distribution with a
// single distinct value yields no cut points.
func CutPointsEqualWidth(dist *stats.Distribution, n int) ([]float64, error) {
	const op = "preprocess.CutPointsEqualWidth"
	if n < 1 {
		return nil, errors.NewValidationError("n", "number of bins must be at least 1", n)
	}
	if dist == nil || dist.Empty() {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if dist.Min() == dist.Max() {
		return nil, nil
	}
	return equalWidthPoints(dist.Min(), dist.Max(), n), nil
}

// CutPointsEqualWidthFixed is CutPointsEqualWidth over an explicit
// range. Equal bounds yield no cut points; inverted or non-finite
// bounds fail validation.
func CutPointsEqualWidthFixed(min, max float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.NewValidationError("n", "number of bins must be at least 1", n)
	}
	if !isFinite(min) || !isFinite(max) {
		return nil, errors.NewValidationError("range", "bounds must be finite", [2]float64{min, max})
	}
	if min > max {
		return nil, errors.NewValidationError("range", "min must not exceed max", [2]float64{min, max})
	}
	if min == max {
		return nil, nil
	}
	return equalWidthPoints(min, max, n), nil
}

func equalWidthPoints(min, max float64, n int) []float64 {
	width := (max - min) / float64(n)
	points := make([]float64, n-1)
	for i := range points {
		points[i] = min + float64(i+1)*width
	}
	return points
}
