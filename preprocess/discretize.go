package preprocess

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/stats"
)

// Discretization computes a discretized replacement for a continuous
// variable from the data in src.
type Discretization interface {
	// Discretize returns a new discrete variable describing the binning
	// of v, with the value transform attached.
	Discretize(src stats.Source, v data.Variable) (*data.DiscreteVariable, error)
}

// FixedRangeDiscretization is implemented by strategies that can bin
// over an externally supplied value range instead of the observed one.
type FixedRangeDiscretization interface {
	Discretization

	// DiscretizeFixed is Discretize with the value range forced to
	// [min, max].
	DiscretizeFixed(src stats.Source, v data.Variable, min, max float64) (*data.DiscreteVariable, error)
}

// Discretizer maps values of a continuous variable to bin indices
// defined by a sorted sequence of cut points. It implements
// data.ColumnTransform.
type Discretizer struct {
	// Variable is the continuous variable the cut points were learned on.
	Variable data.Variable

	// Points are the cut points, strictly increasing. An empty slice
	// denotes a single all-covering bin.
	Points []float64
}

var _ data.ColumnTransform = (*Discretizer)(nil)

// NewDiscretizer creates a Discretizer over a copy of the cut points.
func NewDiscretizer(v data.Variable, points []float64) *Discretizer {
	pts := make([]float64, len(points))
	copy(pts, points)
	return &Discretizer{Variable: v, Points: pts}
}

// Transform maps every value to its bin index: the number of cut points
// at or below the value. NaN maps to NaN. The output for an empty input
// is empty but never nil.
func (d *Discretizer) Transform(column []float64) []float64 {
	out := make([]float64, len(column))
	for i, x := range column {
		if math.IsNaN(x) {
			out[i] = math.NaN()
			continue
		}
		bin := sort.Search(len(d.Points), func(j int) bool { return d.Points[j] > x })
		out[i] = float64(bin)
	}
	return out
}

// String returns a short description of the transform.
func (d *Discretizer) String() string {
	return fmt.Sprintf("Discretizer(%s, points=%d)", d.Variable.Name(), len(d.Points))
}

// FormatInterval renders one half-open bin as text: "<h" for the
// leftmost bin, ">=l" for the rightmost and "[l, h)" in between. The
// infinite end of a bin is expressed by passing math.Inf.
func FormatInterval(low, high float64, decimals int) string {
	switch {
	case math.IsInf(low, -1) && !math.IsInf(high, +1):
		return "<" + formatValue(high, decimals)
	case math.IsInf(high, +1) && !math.IsInf(low, -1):
		return ">=" + formatValue(low, decimals)
	default:
		return fmt.Sprintf("[%s, %s)", formatValue(low, decimals), formatValue(high, decimals))
	}
}

// formatValue prints a bound at the given precision. Trailing zeros are
// trimmed from the fractional part only, so "20" never degrades to "2".
func formatValue(value float64, decimals int) string {
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// NewDiscretizedVariable builds the discrete variable describing the
// binning of v: one interval label per bin, the value transform
// attached and the source recorded. Zero cut points produce the single
// label "single_value", marking a constant feature.
func NewDiscretizedVariable(v data.Variable, points []float64) *data.DiscreteVariable {
	decimals := 0
	if cv, ok := v.(*data.ContinuousVariable); ok {
		decimals = cv.Decimals
	}

	var values []string
	if len(points) > 0 {
		values = make([]string, 0, len(points)+1)
		for i := 0; i <= len(points); i++ {
			low, high := math.Inf(-1), math.Inf(+1)
			if i > 0 {
				low = points[i-1]
			}
			if i < len(points) {
				high = points[i]
			}
			values = append(values, FormatInterval(low, high, decimals))
		}
	} else {
		values = []string{"single_value"}
	}

	dvar := data.NewDiscreteVariable("D_"+v.Name(), values)
	dvar.Compute = NewDiscretizer(v, points)
	dvar.Source = v
	return dvar
}
