package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
)

func classTable(t *testing.T, x, y []float64, classValues []string) (*data.Table, *data.ContinuousVariable) {
	t.Helper()

	v := data.NewContinuousVariable("x", 2)
	cls := data.NewDiscreteVariable("cls", classValues)
	domain := data.NewDomain([]data.Variable{v}, []data.Variable{cls})
	table, err := data.NewTable(domain,
		mat.NewDense(len(x), 1, x),
		mat.NewDense(len(y), 1, y))
	require.NoError(t, err)
	return table, v
}

func TestGetContingency(t *testing.T) {
	table, v := classTable(t,
		[]float64{1, 1, 2, 3, 3, 3},
		[]float64{0, 1, 0, 1, 1, 0},
		[]string{"a", "b"})

	cont, err := GetContingency(table, v)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, cont.Values)
	assert.Equal(t, 3, cont.NumValues())
	assert.Equal(t, 2, cont.NumClasses())
	assert.Equal(t, 6.0, cont.Total())

	want := mat.NewDense(3, 2, []float64{
		1, 1,
		1, 0,
		1, 2,
	})
	assert.True(t, mat.Equal(want, cont.Counts))
	assert.Equal(t, []float64{3, 3}, cont.ClassTotals())
	assert.Equal(t, 2, cont.PopulatedClasses())
}

func TestGetContingencySkipsMissing(t *testing.T) {
	table, v := classTable(t,
		[]float64{1, math.NaN(), 2, 3},
		[]float64{0, 0, math.NaN(), 1},
		[]string{"a", "b"})

	cont, err := GetContingency(table, v)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3}, cont.Values)
	assert.Equal(t, 2.0, cont.Total())
}

func TestGetContingencyNoClassVariable(t *testing.T) {
	table, v := singleColumnTable(t, []float64{1, 2})

	_, err := GetContingency(table, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoClassVariable))
}

func TestGetContingencyContinuousClass(t *testing.T) {
	v := data.NewContinuousVariable("x", 2)
	y := data.NewContinuousVariable("y", 2)
	domain := data.NewDomain([]data.Variable{v}, []data.Variable{y})
	table, err := data.NewTable(domain,
		mat.NewDense(2, 1, []float64{1, 2}),
		mat.NewDense(2, 1, []float64{0, 1}))
	require.NoError(t, err)

	_, err = GetContingency(table, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoClassVariable))
}

func TestGetContingencyNonIntegralCodes(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(func(error) {})

	table, v := classTable(t,
		[]float64{1, 2},
		[]float64{0.4, 1.0},
		[]string{"a", "b"})

	cont, err := GetContingency(table, v)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, cont.Values)
	assert.Equal(t, []float64{1, 1}, cont.ClassTotals())

	require.Len(t, warnings, 1)
	var conv *errors.DataConversionWarning
	assert.True(t, errors.As(warnings[0], &conv))
}

func TestGetContingencyCodeOutOfRange(t *testing.T) {
	table, v := classTable(t,
		[]float64{1, 2},
		[]float64{0, 2},
		[]string{"a", "b"})

	_, err := GetContingency(table, v)
	require.Error(t, err)

	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}

func TestGetContingencyEmpty(t *testing.T) {
	table, v := classTable(t,
		[]float64{math.NaN()},
		[]float64{0},
		[]string{"a", "b"})

	cont, err := GetContingency(table, v)
	require.NoError(t, err)

	assert.Equal(t, 0, cont.NumValues())
	assert.Nil(t, cont.Counts)
	assert.Equal(t, 0.0, cont.Total())
	assert.Equal(t, 0, cont.PopulatedClasses())
	assert.Equal(t, []float64{0, 0}, cont.ClassTotals())
}
