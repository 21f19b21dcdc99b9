package preprocess

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andyglick/orange3/pkg/errors"
	"github.com/andyglick/orange3/pkg/log"
)

// RangeSpec is a fixed value range for one variable.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config describes a discretization pipeline in YAML:
//
//	method: equal_freq         # equal_freq | equal_width | entropy_mdl
//	bins: 4
//	force: false               # entropy_mdl only
//	clean: true
//	discretize_class: false
//	fixed:
//	  age: {min: 18, max: 99}
type Config struct {
	// Method selects the strategy; empty means equal_freq.
	Method string `yaml:"method"`

	// Bins is the bin count for the closed-form strategies; zero means
	// the default of four.
	Bins int `yaml:"bins"`

	// Force is the EntropyMDL force flag.
	Force bool `yaml:"force"`

	// Clean controls dropping of single-interval features; unset means
	// true.
	Clean *bool `yaml:"clean"`

	// DiscretizeClass also discretizes continuous class variables.
	DiscretizeClass bool `yaml:"discretize_class"`

	// Fixed maps variable names to fixed value ranges.
	Fixed map[string]RangeSpec `yaml:"fixed"`
}

// LoadConfig reads a YAML pipeline configuration from a file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "preprocess.LoadConfig")
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, err
	}
	log.Default().Debug("configuration loaded",
		log.OperationKey, log.OperationLoadConfig,
		"path", path)
	return cfg, nil
}

// ParseConfig decodes a YAML pipeline configuration. Unknown fields are
// rejected; an empty document yields the defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(err, "preprocess.ParseConfig")
	}
	return &cfg, nil
}

// DomainDiscretizer validates the configuration and builds the
// orchestrator it describes.
func (c *Config) DomainDiscretizer() (*DomainDiscretizer, error) {
	method, err := c.buildMethod()
	if err != nil {
		return nil, err
	}

	opts := []Option{WithMethod(method)}
	if c.Clean != nil {
		opts = append(opts, WithClean(*c.Clean))
	}
	if c.DiscretizeClass {
		opts = append(opts, WithClassDiscretization(true))
	}
	for name, r := range c.Fixed {
		if !isFinite(r.Min) || !isFinite(r.Max) {
			return nil, errors.NewValidationError("fixed", fmt.Sprintf("bounds for %q must be finite", name), r)
		}
		if r.Min > r.Max {
			return nil, errors.NewValidationError("fixed", fmt.Sprintf("min must not exceed max for %q", name), r)
		}
		opts = append(opts, WithFixedRange(name, r.Min, r.Max))
	}
	return NewDomainDiscretizer(opts...), nil
}

// buildMethod maps the configured strategy name onto a strategy value.
func (c *Config) buildMethod() (Discretization, error) {
	if c.Bins < 0 {
		return nil, errors.NewValidationError("bins", "number of bins must not be negative", c.Bins)
	}
	switch c.Method {
	case "", "equal_freq":
		return NewEqualFreq(c.Bins), nil
	case "equal_width":
		return NewEqualWidth(c.Bins), nil
	case "entropy_mdl":
		return NewEntropyMDL(c.Force), nil
	default:
		return nil, errors.NewValidationError("method", "unknown discretization method", c.Method)
	}
}
