package preprocess

import (
	"fmt"
	"math"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
	"github.com/andyglick/orange3/pkg/log"
	"github.com/andyglick/orange3/stats"
)

// LinearTransform rescales a column elementwise as (x - Offset) * Scale.
// It implements data.ColumnTransform; NaN propagates.
type LinearTransform struct {
	Offset float64
	Scale  float64
}

var _ data.ColumnTransform = (*LinearTransform)(nil)

// Transform applies the rescaling to every value of column.
func (t *LinearTransform) Transform(column []float64) []float64 {
	out := make([]float64, len(column))
	for i, x := range column {
		out[i] = (x - t.Offset) * t.Scale
	}
	return out
}

// Inverse returns the transform mapping rescaled values back onto the
// original scale. Scale must be non-zero, which holds for every
// transform the Normalizer builds.
func (t *LinearTransform) Inverse() *LinearTransform {
	return &LinearTransform{Offset: -t.Offset * t.Scale, Scale: 1 / t.Scale}
}

// String returns a readable representation of the transform.
func (t *LinearTransform) String() string {
	return fmt.Sprintf("LinearTransform(offset=%g, scale=%g)", t.Offset, t.Scale)
}

// NormalizeKind selects how continuous variables are rescaled.
type NormalizeKind int

const (
	// NormalizeStandard rescales to zero mean and unit variance.
	NormalizeStandard NormalizeKind = iota

	// NormalizeRange rescales the observed value range into [Low, High].
	NormalizeRange
)

// Normalizer rescales the continuous attributes of a table, producing a
// domain of derived variables whose Compute is a LinearTransform. Class
// variables and discrete attributes pass through untouched.
type Normalizer struct {
	// Kind selects standardization (default) or range scaling.
	Kind NormalizeKind

	// Low, High bound the target range for NormalizeRange.
	Low, High float64
}

// NewStandardNormalizer creates a Normalizer producing zero mean, unit
// variance variables.
func NewStandardNormalizer() *Normalizer {
	return &Normalizer{Kind: NormalizeStandard}
}

// NewRangeNormalizer creates a Normalizer scaling every continuous
// attribute into [low, high].
func NewRangeNormalizer(low, high float64) *Normalizer {
	return &Normalizer{Kind: NormalizeRange, Low: low, High: high}
}

// String returns a readable representation of the normalizer.
func (n *Normalizer) String() string {
	if n.Kind == NormalizeRange {
		return fmt.Sprintf("Normalizer(range=[%g, %g])", n.Low, n.High)
	}
	return "Normalizer(standard)"
}

// Normalize computes the normalized domain of table. Each continuous
// attribute is replaced by a derived variable named "N_"+name carrying
// the fitted linear transform.
func (n *Normalizer) Normalize(table *data.Table) (*data.Domain, error) {
	if table == nil {
		return nil, errors.NewValidationError("table", "must not be nil", nil)
	}
	if n.Kind == NormalizeRange {
		if !isFinite(n.Low) || !isFinite(n.High) || n.Low >= n.High {
			return nil, errors.NewValidationError("range",
				"target range must be finite with low < high", [2]float64{n.Low, n.High})
		}
	}

	src := table.Domain()
	attrs := make([]data.Variable, 0, len(src.Attributes))
	for _, v := range src.Attributes {
		if !v.IsContinuous() {
			attrs = append(attrs, v)
			continue
		}
		nv, err := n.normalizeVariable(table, v)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, nv)
	}

	log.Default().Debug("domain normalized",
		log.OperationKey, log.OperationNormalize,
		log.VariablesKey, len(attrs))
	return data.NewDomain(attrs, src.ClassVars), nil
}

// normalizeVariable fits the linear transform for one variable from its
// value distribution.
func (n *Normalizer) normalizeVariable(table *data.Table, v data.Variable) (*data.ContinuousVariable, error) {
	const op = "Normalizer.Normalize"

	dist, err := stats.GetDistribution(table, v)
	if err != nil {
		return nil, err
	}
	if dist.Empty() {
		return nil, errors.Wrap(errors.ErrEmptyData, op+": "+v.Name())
	}

	var offset, scale float64
	switch n.Kind {
	case NormalizeRange:
		span := dist.Max() - dist.Min()
		if span < 1e-8 {
			// Constant column: pin it to the low end of the target.
			offset, scale = dist.Min()-n.Low, 1
		} else {
			scale = (n.High - n.Low) / span
			offset = dist.Min() - n.Low/scale
		}
	default:
		sigma := populationStdDev(dist)
		if sigma < 1e-8 {
			sigma = 1
		}
		offset, scale = dist.Mean(), 1/sigma
	}

	decimals := 3
	if cv, ok := v.(*data.ContinuousVariable); ok && cv.Decimals > decimals {
		decimals = cv.Decimals
	}
	nv := data.NewContinuousVariable("N_"+v.Name(), decimals)
	nv.Compute = &LinearTransform{Offset: offset, Scale: scale}
	nv.Source = v
	return nv, nil
}

// populationStdDev returns the count-weighted standard deviation with
// the divide-by-N convention.
func populationStdDev(dist *stats.Distribution) float64 {
	mean := dist.Mean()
	sumSquares := 0.0
	for i, x := range dist.Values {
		diff := x - mean
		sumSquares += dist.Counts[i] * diff * diff
	}
	return math.Sqrt(sumSquares / dist.Total())
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
