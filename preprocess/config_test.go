package preprocess

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	doc := `
method: equal_width
bins: 5
clean: false
discretize_class: true
fixed:
  age: {min: 0, max: 100}
`
	cfg, err := ParseConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "equal_width", cfg.Method)
	assert.Equal(t, 5, cfg.Bins)
	require.NotNil(t, cfg.Clean)
	assert.False(t, *cfg.Clean)
	assert.True(t, cfg.DiscretizeClass)
	assert.Equal(t, RangeSpec{Min: 0, Max: 100}, cfg.Fixed["age"])
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Method)
	assert.Nil(t, cfg.Clean)
	assert.Empty(t, cfg.Fixed)
}

func TestParseConfigUnknownField(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("buckets: 3\n"))
	assert.Error(t, err)
}

func TestConfigRoundTrip(t *testing.T) {
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(func(error) {})

	doc := `
method: equal_width
bins: 4
fixed:
  age: {min: 0, max: 100}
`
	cfg, err := ParseConfig(strings.NewReader(doc))
	require.NoError(t, err)

	disc, err := cfg.DomainDiscretizer()
	require.NoError(t, err)

	table, _ := demoTable(t)
	newDomain, err := disc.Discretize(table)
	require.NoError(t, err)

	dvar := newDomain.Attributes[0].(*data.DiscreteVariable)
	assert.Equal(t, []string{"<25", "[25, 50)", "[50, 75)", ">=75"}, dvar.Values)
}

func TestConfigDefaults(t *testing.T) {
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(func(error) {})

	disc, err := (&Config{}).DomainDiscretizer()
	require.NoError(t, err)

	table, _ := demoTable(t)
	newDomain, err := disc.Discretize(table)
	require.NoError(t, err)

	// Equal frequency with four bins and clean filtering, as without
	// any configuration.
	require.Len(t, newDomain.Attributes, 2)
	dvar := newDomain.Attributes[0].(*data.DiscreteVariable)
	assert.Equal(t, []string{"<35", "[35, 55)", "[55, 75)", ">=75"}, dvar.Values)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown method", Config{Method: "magic"}},
		{"negative bins", Config{Bins: -3}},
		{"inverted fixed range", Config{Fixed: map[string]RangeSpec{"age": {Min: 5, Max: 1}}}},
		{"non-finite fixed range", Config{Fixed: map[string]RangeSpec{"age": {Min: math.NaN(), Max: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.DomainDiscretizer()
			require.Error(t, err)
			var verr *errors.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discretize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: entropy_mdl\nforce: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "entropy_mdl", cfg.Method)
	assert.True(t, cfg.Force)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
