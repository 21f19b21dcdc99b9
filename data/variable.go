// Package data provides the schema and storage types the preprocessing
// routines operate on: variable descriptors, the Domain that groups them
// into a schema, and a dense in-memory Table on gonum matrices.
//
// Variables are descriptors, not storage. A derived variable carries a
// ColumnTransform that recomputes its column from a source variable,
// which is how discretized and normalized features stay applicable to
// any table that still contains the original column.
package data

import "fmt"

// ColumnTransform derives the column of one variable from the column of
// another. Implementations must be pure and position-preserving: the
// input is never mutated, the output has the same length, and a NaN
// input produces a NaN output at the same index.
type ColumnTransform interface {
	Transform(column []float64) []float64
}

// Variable describes one column of a dataset.
type Variable interface {
	// Name returns the column name, unique within a Domain.
	Name() string
	// IsContinuous reports whether the column holds real values.
	IsContinuous() bool
	// IsDiscrete reports whether the column holds categorical codes.
	IsDiscrete() bool
}

// ContinuousVariable describes a real-valued column.
type ContinuousVariable struct {
	name string

	// Decimals is the display precision used when values of this
	// variable appear in interval labels.
	Decimals int

	// Compute derives this variable's column from Source. It is set on
	// derived variables (for example a rescaled feature) and nil on
	// plain ones.
	Compute ColumnTransform

	// Source is the variable Compute reads, nil on plain variables.
	Source Variable
}

// NewContinuousVariable creates a continuous variable descriptor.
// Negative decimals are treated as zero.
func NewContinuousVariable(name string, decimals int) *ContinuousVariable {
	if decimals < 0 {
		decimals = 0
	}
	return &ContinuousVariable{name: name, Decimals: decimals}
}

// Name returns the column name.
func (v *ContinuousVariable) Name() string { return v.name }

// IsContinuous reports true.
func (v *ContinuousVariable) IsContinuous() bool { return true }

// IsDiscrete reports false.
func (v *ContinuousVariable) IsDiscrete() bool { return false }

// String returns a short description of the variable.
func (v *ContinuousVariable) String() string {
	return fmt.Sprintf("ContinuousVariable(%s, decimals=%d)", v.name, v.Decimals)
}

// DiscreteVariable describes a categorical column. Its column stores
// float64 codes indexing into Values.
type DiscreteVariable struct {
	name string

	// Values are the ordered category labels; code i stands for Values[i].
	Values []string

	// Compute derives this variable's column from Source. Discretization
	// sets it so a learned binning stays applicable to new data.
	Compute ColumnTransform

	// Source is the variable Compute reads, nil on plain variables.
	Source Variable
}

// NewDiscreteVariable creates a discrete variable descriptor with the
// given ordered category labels. The label slice is copied.
func NewDiscreteVariable(name string, values []string) *DiscreteVariable {
	vals := make([]string, len(values))
	copy(vals, values)
	return &DiscreteVariable{name: name, Values: vals}
}

// Name returns the column name.
func (v *DiscreteVariable) Name() string { return v.name }

// IsContinuous reports false.
func (v *DiscreteVariable) IsContinuous() bool { return false }

// IsDiscrete reports true.
func (v *DiscreteVariable) IsDiscrete() bool { return true }

// NumValues returns the number of categories.
func (v *DiscreteVariable) NumValues() int { return len(v.Values) }

// String returns a short description of the variable.
func (v *DiscreteVariable) String() string {
	return fmt.Sprintf("DiscreteVariable(%s, values=%d)", v.name, len(v.Values))
}

// computeOf returns the transform and source attached to a derived
// variable, or nils for a plain one.
func computeOf(v Variable) (ColumnTransform, Variable) {
	switch w := v.(type) {
	case *ContinuousVariable:
		return w.Compute, w.Source
	case *DiscreteVariable:
		return w.Compute, w.Source
	}
	return nil, nil
}
