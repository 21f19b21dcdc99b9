package preprocess

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyglick/orange3/data"
)

func TestDiscretizerTransform(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	d := NewDiscretizer(v, []float64{10, 20})

	got := d.Transform([]float64{5, 10, 15, 20, 25})
	assert.Equal(t, []float64{0, 1, 1, 2, 2}, got)
}

func TestDiscretizerTransformNaN(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	d := NewDiscretizer(v, []float64{10, 20})

	got := d.Transform([]float64{5, math.NaN(), 25})
	assert.Equal(t, 0.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 2.0, got[2])
}

func TestDiscretizerTransformEmpty(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	d := NewDiscretizer(v, []float64{10})

	got := d.Transform(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiscretizerTransformNoPoints(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	d := NewDiscretizer(v, nil)

	assert.Equal(t, []float64{0, 0, 0}, d.Transform([]float64{-1, 0, 99}))
}

func TestDiscretizerCopiesPoints(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	points := []float64{10, 20}
	d := NewDiscretizer(v, points)

	points[0] = -5
	assert.Equal(t, []float64{10, 20}, d.Points)
}

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		name     string
		low      float64
		high     float64
		decimals int
		want     string
	}{
		{"leftmost", math.Inf(-1), 20, 0, "<20"},
		{"rightmost", 10, math.Inf(+1), 0, ">=10"},
		{"interior", 10, 20, 0, "[10, 20)"},
		{"trailing zeros trimmed", 2.5, math.Inf(+1), 2, ">=2.5"},
		{"integral at precision", 2, 4, 2, "[2, 4)"},
		{"negative bound", math.Inf(-1), -1.5, 1, "<-1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInterval(tt.low, tt.high, tt.decimals))
		})
	}
}

func TestFormatValueKeepsIntegerZeros(t *testing.T) {
	// At zero precision there is no fractional part to trim, so "20"
	// must stay "20".
	assert.Equal(t, "<20", FormatInterval(math.Inf(-1), 20, 0))
	assert.Equal(t, "[100, 200)", FormatInterval(100, 200, 0))
}

func TestNewDiscretizedVariable(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	dvar := NewDiscretizedVariable(v, []float64{10, 20})

	assert.Equal(t, "D_age", dvar.Name())
	assert.Equal(t, []string{"<10", "[10, 20)", ">=20"}, dvar.Values)
	assert.Same(t, v, dvar.Source)

	transform, ok := dvar.Compute.(*Discretizer)
	require.True(t, ok)
	assert.Equal(t, []float64{10, 20}, transform.Points)
}

func TestNewDiscretizedVariableConstant(t *testing.T) {
	v := data.NewContinuousVariable("age", 0)
	dvar := NewDiscretizedVariable(v, nil)

	assert.Equal(t, []string{"single_value"}, dvar.Values)
	assert.Equal(t, 1, dvar.NumValues())
}

func TestNewDiscretizedVariableDecimals(t *testing.T) {
	v := data.NewContinuousVariable("ratio", 2)
	dvar := NewDiscretizedVariable(v, []float64{2.5})

	assert.Equal(t, []string{"<2.5", ">=2.5"}, dvar.Values)
}

func TestLabelBoundaryRoundTrip(t *testing.T) {
	v := data.NewContinuousVariable("ratio", 2)
	dvar := NewDiscretizedVariable(v, []float64{2.5, 7.25})

	// The rendered boundary reparses to the original value within the
	// declared precision.
	low := strings.TrimPrefix(dvar.Values[0], "<")
	parsed, err := strconv.ParseFloat(low, 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, parsed, 0.005)

	high := strings.TrimPrefix(dvar.Values[len(dvar.Values)-1], ">=")
	parsed, err = strconv.ParseFloat(high, 64)
	require.NoError(t, err)
	assert.InDelta(t, 7.25, parsed, 0.005)
}

func TestLabelsPartitionLine(t *testing.T) {
	// Every value falls in exactly the bin whose label interval holds
	// it: boundaries belong to the bin on their right.
	v := data.NewContinuousVariable("age", 0)
	dvar := NewDiscretizedVariable(v, []float64{10, 20})
	transform := dvar.Compute.(*Discretizer)

	tests := []struct {
		x    float64
		bin  float64
		name string
	}{
		{9.99, 0, "<10"},
		{10, 1, "[10, 20)"},
		{19.99, 1, "[10, 20)"},
		{20, 2, ">=20"},
	}
	for _, tt := range tests {
		got := transform.Transform([]float64{tt.x})
		assert.Equal(t, tt.bin, got[0], "x=%v", tt.x)
		assert.Equal(t, tt.name, dvar.Values[int(got[0])], "x=%v", tt.x)
	}
}
