package preprocess

import (
	"github.com/andyglick/orange3/pkg/log"
)

// Option is a function that configures DomainDiscretizer
type Option func(*DomainDiscretizer)

// WithMethod sets the discretization strategy applied to every
// continuous variable (default: EqualFreq with four bins)
func WithMethod(method Discretization) Option {
	return func(d *DomainDiscretizer) {
		if method != nil {
			d.method = method
		}
	}
}

// WithClean sets whether features reduced to a single interval are
// dropped from the result (default: true)
func WithClean(clean bool) Option {
	return func(d *DomainDiscretizer) {
		d.clean = clean
	}
}

// WithClassDiscretization sets whether continuous class variables are
// discretized as well (default: false)
func WithClassDiscretization(discretize bool) Option {
	return func(d *DomainDiscretizer) {
		d.discretizeClass = discretize
	}
}

// WithFixedRange registers a fixed value range for the named variable,
// used instead of the observed range by strategies that support it
func WithFixedRange(name string, min, max float64) Option {
	return func(d *DomainDiscretizer) {
		if d.fixed == nil {
			d.fixed = make(map[string][2]float64)
		}
		d.fixed[name] = [2]float64{min, max}
	}
}

// WithLogger sets the logger used for progress and drop reporting
func WithLogger(logger log.Logger) Option {
	return func(d *DomainDiscretizer) {
		if logger != nil {
			d.logger = logger
		}
	}
}
