package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/andyglick/orange3/pkg/errors"
)

func newTestTable(t *testing.T) (*Table, *ContinuousVariable, *ContinuousVariable, *DiscreteVariable) {
	t.Helper()

	age := NewContinuousVariable("age", 1)
	income := NewContinuousVariable("income", 0)
	cls := NewDiscreteVariable("approved", []string{"no", "yes"})
	domain := NewDomain([]Variable{age, income}, []Variable{cls})

	x := mat.NewDense(4, 2, []float64{
		25, 1200,
		32, 1800,
		41, math.NaN(),
		58, 2400,
	})
	y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})

	table, err := NewTable(domain, x, y)
	require.NoError(t, err)
	return table, age, income, cls
}

func TestNewTableValidation(t *testing.T) {
	age := NewContinuousVariable("age", 1)
	cls := NewDiscreteVariable("approved", []string{"no", "yes"})
	domain := NewDomain([]Variable{age}, []Variable{cls})

	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{0, 1, 0})

	tests := []struct {
		name   string
		domain *Domain
		x, y   *mat.Dense
	}{
		{"nil domain", nil, x, y},
		{"missing x", domain, nil, y},
		{"attribute count mismatch", domain, mat.NewDense(3, 2, nil), y},
		{"missing y", domain, x, nil},
		{"class count mismatch", domain, x, mat.NewDense(3, 2, nil)},
		{"row count mismatch", domain, x, mat.NewDense(2, 1, nil)},
		{"unexpected y", NewDomain([]Variable{age}, nil), x, y},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.domain, tt.x, tt.y)
			assert.Error(t, err)
		})
	}
}

func TestNewTableDimensionErrorDetails(t *testing.T) {
	age := NewContinuousVariable("age", 1)
	domain := NewDomain([]Variable{age}, nil)

	_, err := NewTable(domain, mat.NewDense(3, 2, nil), nil)
	require.Error(t, err)

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
	assert.Equal(t, 1, dimErr.Axis)
}

func TestTableNumRows(t *testing.T) {
	table, _, _, _ := newTestTable(t)
	assert.Equal(t, 4, table.NumRows())

	clsOnly := NewDomain(nil, []Variable{NewDiscreteVariable("cls", []string{"a", "b"})})
	yOnly, err := NewTable(clsOnly, nil, mat.NewDense(2, 1, []float64{0, 1}))
	require.NoError(t, err)
	assert.Equal(t, 2, yOnly.NumRows())
}

func TestTableColumn(t *testing.T) {
	table, age, income, cls := newTestTable(t)

	col, err := table.Column(age)
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 32, 41, 58}, col)

	col, err = table.Column(income)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, col[0])
	assert.True(t, math.IsNaN(col[2]))

	col, err = table.Column(cls)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0}, col)
}

func TestTableColumnReturnsCopy(t *testing.T) {
	table, age, _, _ := newTestTable(t)

	col, err := table.Column(age)
	require.NoError(t, err)
	col[0] = -1

	again, err := table.Column(age)
	require.NoError(t, err)
	assert.Equal(t, 25.0, again[0])
}

func TestTableColumnUnknownVariable(t *testing.T) {
	table, _, _, _ := newTestTable(t)

	_, err := table.Column(NewContinuousVariable("unknown", 0))
	require.Error(t, err)

	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}

type halfTransform struct{}

func (halfTransform) Transform(column []float64) []float64 {
	out := make([]float64, len(column))
	for i, v := range column {
		out[i] = v / 2
	}
	return out
}

func TestTableTransformSameDomain(t *testing.T) {
	table, age, _, _ := newTestTable(t)

	out, err := table.Transform(table.Domain())
	require.NoError(t, err)
	assert.Equal(t, table.NumRows(), out.NumRows())

	col, err := out.Column(age)
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 32, 41, 58}, col)
}

func TestTableTransformDerivedColumn(t *testing.T) {
	table, age, _, cls := newTestTable(t)

	halfAge := NewContinuousVariable("half_age", 1)
	halfAge.Compute = halfTransform{}
	halfAge.Source = age

	out, err := table.Transform(NewDomain([]Variable{halfAge}, []Variable{cls}))
	require.NoError(t, err)

	col, err := out.Column(halfAge)
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 16, 20.5, 29}, col)

	clsCol, err := out.Column(cls)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0}, clsCol)
}

func TestTableTransformNaNPropagates(t *testing.T) {
	table, _, income, _ := newTestTable(t)

	halfIncome := NewContinuousVariable("half_income", 0)
	halfIncome.Compute = halfTransform{}
	halfIncome.Source = income

	out, err := table.Transform(NewDomain([]Variable{halfIncome}, nil))
	require.NoError(t, err)

	col, err := out.Column(halfIncome)
	require.NoError(t, err)
	assert.Equal(t, 600.0, col[0])
	assert.True(t, math.IsNaN(col[2]))
}

func TestTableTransformUnknownVariable(t *testing.T) {
	table, _, _, _ := newTestTable(t)

	_, err := table.Transform(NewDomain([]Variable{NewContinuousVariable("orphan", 0)}, nil))
	assert.Error(t, err)
}
