package preprocess

import (
	"fmt"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/pkg/errors"
	"github.com/andyglick/orange3/pkg/log"
)

// DomainDiscretizer derives a fully discrete schema from a table:
// every continuous attribute is replaced by its discretized
// counterpart, discrete attributes pass through untouched.
type DomainDiscretizer struct {
	method          Discretization
	clean           bool
	discretizeClass bool
	fixed           map[string][2]float64
	logger          log.Logger
}

// NewDomainDiscretizer creates a DomainDiscretizer with the given
// options. The defaults are EqualFreq with four bins, clean enabled and
// class variables left untouched.
func NewDomainDiscretizer(opts ...Option) *DomainDiscretizer {
	d := &DomainDiscretizer{
		method: NewEqualFreq(4),
		clean:  true,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discretize computes the discretized domain of table. The table and
// its domain stay untouched. Any strategy error aborts the whole
// operation; no partial domain is returned.
func (d *DomainDiscretizer) Discretize(table *data.Table) (newDomain *data.Domain, err error) {
	const op = "DomainDiscretizer.Discretize"
	defer errors.Recover(&err, op)

	if table == nil {
		return nil, errors.NewValidationError("table", "must not be nil", nil)
	}

	src := table.Domain()
	logger := d.logger.With(
		log.OperationKey, log.OperationDiscretize,
		log.MethodKey, strategyName(d.method),
	)
	logger.Debug("discretizing domain",
		log.SamplesKey, table.NumRows(),
		log.VariablesKey, len(src.Attributes))

	attrs, dropped, err := d.transformList(logger, table, src.Attributes, d.fixed)
	if err != nil {
		return nil, err
	}

	classVars := src.ClassVars
	classDropped := 0
	if d.discretizeClass {
		classVars, classDropped, err = d.transformList(logger, table, src.ClassVars, nil)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("domain discretized",
		log.VariablesKey, len(attrs)+len(classVars),
		log.DroppedKey, dropped+classDropped)
	return data.NewDomain(attrs, classVars), nil
}

// transformList discretizes the continuous variables of vars and keeps
// the rest. With clean set, results reduced to a single interval are
// dropped and reported.
func (d *DomainDiscretizer) transformList(logger log.Logger, table *data.Table, vars []data.Variable, fixed map[string][2]float64) ([]data.Variable, int, error) {
	out := make([]data.Variable, 0, len(vars))
	dropped := 0
	for _, v := range vars {
		if !v.IsContinuous() {
			out = append(out, v)
			continue
		}
		nv, err := d.discretizeVariable(table, v, fixed)
		if err != nil {
			return nil, 0, err
		}
		if d.clean && nv.NumValues() <= 1 {
			dropped++
			errors.Warn(errors.NewConstantFeatureWarning(v.Name(), strategyName(d.method)))
			logger.Debug("dropping single-interval feature", log.VariableKey, v.Name())
			continue
		}
		logger.Debug("variable discretized",
			log.VariableKey, v.Name(),
			log.BinsKey, nv.NumValues())
		out = append(out, nv)
	}
	return out, dropped, nil
}

// discretizeVariable applies the method, routing through the fixed
// range when one is registered for v and the method can use it.
func (d *DomainDiscretizer) discretizeVariable(table *data.Table, v data.Variable, fixed map[string][2]float64) (*data.DiscreteVariable, error) {
	if r, ok := fixed[v.Name()]; ok {
		if fr, ok := d.method.(FixedRangeDiscretization); ok {
			return fr.DiscretizeFixed(table, v, r[0], r[1])
		}
	}
	return d.method.Discretize(table, v)
}

// strategyName renders a method for logs and warnings.
func strategyName(m Discretization) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", m)
}
