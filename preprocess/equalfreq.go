package preprocess

import (
	"fmt"
	"sort"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
	"github.com/andyglick/orange3/stats"
)

// EqualFreq discretizes into bins holding close to the same number of
// instances.
type EqualFreq struct {
	// N is the number of bins. Zero selects the default of four,
	// negative values fail validation. The result can have fewer bins
	// when the data has too few distinct values.
	N int
}

var _ Discretization = (*EqualFreq)(nil)

// NewEqualFreq creates the strategy with the given number of bins.
func NewEqualFreq(n int) *EqualFreq {
	return &EqualFreq{N: n}
}

// String returns a short description of the strategy.
func (e *EqualFreq) String() string {
	return fmt.Sprintf("EqualFreq(n=%d)", e.bins())
}

func (e *EqualFreq) bins() int {
	if e.N == 0 {
		return 4
	}
	return e.N
}

// Discretize computes quantile-based cut points for v. A backend
// implementing stats.QuantileSource supplies them directly; otherwise
// they come from the aggregated value distribution.
func (e *EqualFreq) Discretize(src stats.Source, v data.Variable) (*data.DiscreteVariable, error) {
	const op = "EqualFreq.Discretize"
	n := e.bins()
	if n < 1 {
		return nil, errors.NewValidationError("n", "number of bins must be at least 1", e.N)
	}

	var points []float64
	if qs, ok := src.(stats.QuantileSource); ok {
		fractions := make([]float64, 0, n-1)
		for i := 0; i < n-1; i++ {
			fractions = append(fractions, float64(i+1)/float64(n))
		}
		raw, err := qs.Quantiles(v, fractions)
		if err != nil {
			return nil, err
		}
		if err := errors.CheckValues(op, raw); err != nil {
			return nil, err
		}
		points = dedupeSorted(raw)
	} else {
		dist, err := stats.GetDistribution(src, v)
		if err != nil {
			return nil, err
		}
		points, err = CutPointsEqualFreq(dist, n)
		if err != nil {
			return nil, err
		}
	}
	return NewDiscretizedVariable(v, points), nil
}

// CutPointsEqualFreq returns the cut points splitting the distribution
// into n bins of close to equal count: cut i is the value at quantile
// (i+1)/n, the smallest value whose cumulative count strictly exceeds
// that fraction of the total. Duplicate cuts collapse, so fewer than
// n-1 points can come back. A distribution with a single distinct
// value yields no cut points.
func CutPointsEqualFreq(dist *stats.Distribution, n int) ([]float64, error) {
	const op = "preprocess.CutPointsEqualFreq"
	if n < 1 {
		return nil, errors.NewValidationError("n", "number of bins must be at least 1", n)
	}
	if dist == nil || dist.Empty() {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(dist.Values) < 2 {
		return nil, nil
	}

	var points []float64
	for i := 0; i < n-1; i++ {
		q := dist.Quantile(float64(i+1) / float64(n))
		if len(points) == 0 || q != points[len(points)-1] {
			points = append(points, q)
		}
	}
	return points, nil
}

// dedupeSorted sorts the points ascending and drops duplicates.
func dedupeSorted(points []float64) []float64 {
	out := make([]float64, len(points))
	copy(out, points)
	sort.Float64s(out)

	j := 0
	for i, p := range out {
		if i == 0 || p != out[j-1] {
			out[j] = p
			j++
		}
	}
	return out[:j]
}
