package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
)

// Contingency is the sorted aggregate of one column split by the class:
// distinct values as rows, per-class counts as columns. The row order
// is strictly increasing by value, which the entropy search relies on.
type Contingency struct {
	// Values are the distinct non-missing column values, strictly
	// increasing.
	Values []float64

	// Counts is a len(Values) by NumClasses matrix; row i holds the
	// per-class counts of Values[i]. It is nil when Values is empty.
	Counts *mat.Dense

	numClasses int
}

// GetContingency aggregates the column of v from src against the first
// class variable of src's domain. Rows with a missing value in either
// column are skipped. The class variable must be a discrete variable;
// non-integral class codes are truncated with a DataConversionWarning.
func GetContingency(src Source, v data.Variable) (*Contingency, error) {
	const op = "stats.GetContingency"

	classVar := src.Domain().ClassVar()
	if classVar == nil || !classVar.IsDiscrete() {
		return nil, errors.Wrap(errors.ErrNoClassVariable, op)
	}
	discrete, ok := classVar.(*data.DiscreteVariable)
	if !ok {
		return nil, errors.NewValueError(op, fmt.Sprintf("class variable %q is not a data.DiscreteVariable", classVar.Name()))
	}
	numClasses := discrete.NumValues()
	if numClasses < 1 {
		return nil, errors.NewValueError(op, fmt.Sprintf("class variable %q has no values", classVar.Name()))
	}

	col, err := src.Column(v)
	if err != nil {
		return nil, err
	}
	classCol, err := src.Column(classVar)
	if err != nil {
		return nil, err
	}
	if len(col) != len(classCol) {
		return nil, errors.NewDimensionError(op, len(col), len(classCol), 0)
	}

	type obs struct {
		value float64
		class int
	}
	rows := make([]obs, 0, len(col))
	warned := false
	for i := range col {
		x, y := col[i], classCol[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		code := int(y)
		if float64(code) != y && !warned {
			errors.Warn(errors.NewDataConversionWarning("float64", "class code",
				fmt.Sprintf("non-integral class value %v in column %q truncated", y, classVar.Name())))
			warned = true
		}
		if code < 0 || code >= numClasses {
			return nil, errors.NewValueError(op, fmt.Sprintf("class code %d out of range [0, %d) at row %d", code, numClasses, i))
		}
		rows = append(rows, obs{value: x, class: code})
	}

	cont := &Contingency{numClasses: numClasses}
	if len(rows) == 0 {
		return cont, nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].value < rows[j].value })

	distinct := 1
	for i := 1; i < len(rows); i++ {
		if rows[i].value != rows[i-1].value {
			distinct++
		}
	}

	cont.Values = make([]float64, 0, distinct)
	cont.Counts = mat.NewDense(distinct, numClasses, nil)
	r := -1
	for _, o := range rows {
		if r < 0 || o.value != cont.Values[r] {
			r++
			cont.Values = append(cont.Values, o.value)
		}
		cont.Counts.Set(r, o.class, cont.Counts.At(r, o.class)+1)
	}
	return cont, nil
}

// NewContingency builds a contingency from an explicit count matrix.
// values must be strictly increasing and match the rows of counts. A
// nil counts matrix with no values gives an empty contingency over
// numClasses classes.
func NewContingency(values []float64, counts *mat.Dense, numClasses int) (*Contingency, error) {
	const op = "stats.NewContingency"
	if numClasses < 1 {
		return nil, errors.NewValidationError("numClasses", "must be at least 1", numClasses)
	}
	if counts == nil {
		if len(values) != 0 {
			return nil, errors.NewDimensionError(op, len(values), 0, 0)
		}
		return &Contingency{numClasses: numClasses}, nil
	}

	rows, cols := counts.Dims()
	if rows != len(values) {
		return nil, errors.NewDimensionError(op, len(values), rows, 0)
	}
	if cols != numClasses {
		return nil, errors.NewDimensionError(op, numClasses, cols, 1)
	}
	for i, x := range values {
		if math.IsNaN(x) {
			return nil, errors.NewValueError(op, fmt.Sprintf("value at row %d is NaN", i))
		}
		if i > 0 && values[i-1] >= x {
			return nil, errors.NewValueError(op, fmt.Sprintf("values must be strictly increasing, got %v after %v", x, values[i-1]))
		}
	}

	cont := &Contingency{
		Values:     append([]float64(nil), values...),
		Counts:     mat.DenseCopyOf(counts),
		numClasses: numClasses,
	}
	return cont, nil
}

// NumValues returns the number of distinct column values.
func (c *Contingency) NumValues() int { return len(c.Values) }

// NumClasses returns the width of the count matrix.
func (c *Contingency) NumClasses() int { return c.numClasses }

// Total returns the number of aggregated instances.
func (c *Contingency) Total() float64 {
	if c.Counts == nil {
		return 0
	}
	return mat.Sum(c.Counts)
}

// ClassTotals returns the per-class instance counts.
func (c *Contingency) ClassTotals() []float64 {
	totals := make([]float64, c.numClasses)
	if c.Counts == nil {
		return totals
	}
	rows, cols := c.Counts.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			totals[j] += c.Counts.At(i, j)
		}
	}
	return totals
}

// PopulatedClasses returns the number of classes with at least one
// instance.
func (c *Contingency) PopulatedClasses() int {
	populated := 0
	for _, t := range c.ClassTotals() {
		if t > 0 {
			populated++
		}
	}
	return populated
}
