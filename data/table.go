package data

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/andyglick/orange3/pkg/errors"
)

// Table is a dense in-memory dataset. Attribute columns live in X and
// class columns in Y, both column-aligned with the Domain. NaN encodes
// a missing value.
type Table struct {
	// X holds the attribute columns, one row per instance. It is nil
	// exactly when the domain has no attributes.
	X *mat.Dense

	// Y holds the class columns, nil when the domain has none.
	Y *mat.Dense

	domain *Domain
}

// NewTable validates the matrix shapes against the domain and wraps
// them into a table. Y must be nil exactly when the domain has no class
// variables, and X likewise for a domain without attributes.
func NewTable(domain *Domain, x, y *mat.Dense) (*Table, error) {
	const op = "data.NewTable"
	if domain == nil {
		return nil, errors.NewValidationError("domain", "must not be nil", nil)
	}

	if x == nil {
		if len(domain.Attributes) > 0 {
			return nil, errors.NewDimensionError(op, len(domain.Attributes), 0, 1)
		}
	} else {
		_, c := x.Dims()
		if c != len(domain.Attributes) {
			return nil, errors.NewDimensionError(op, len(domain.Attributes), c, 1)
		}
	}

	if y == nil {
		if len(domain.ClassVars) > 0 {
			return nil, errors.NewDimensionError(op, len(domain.ClassVars), 0, 1)
		}
	} else {
		yr, yc := y.Dims()
		if yc != len(domain.ClassVars) {
			return nil, errors.NewDimensionError(op, len(domain.ClassVars), yc, 1)
		}
		if x != nil {
			if xr, _ := x.Dims(); yr != xr {
				return nil, errors.NewDimensionError(op, xr, yr, 0)
			}
		}
	}

	return &Table{X: x, Y: y, domain: domain}, nil
}

// Domain returns the schema of the table.
func (t *Table) Domain() *Domain { return t.domain }

// NumRows returns the number of instances in the table.
func (t *Table) NumRows() int {
	if t.X != nil {
		r, _ := t.X.Dims()
		return r
	}
	if t.Y != nil {
		r, _ := t.Y.Dims()
		return r
	}
	return 0
}

// Column returns a fresh copy of the column belonging to v. The
// variable is located by name in the attribute part first, then in the
// class part.
func (t *Table) Column(v Variable) ([]float64, error) {
	pos, class, ok := t.domain.index(v)
	if !ok {
		return nil, errors.NewValueError("Table.Column", fmt.Sprintf("variable %q is not in the domain", v.Name()))
	}
	m := t.X
	if class {
		m = t.Y
	}
	rows, _ := m.Dims()
	out := make([]float64, rows)
	mat.Col(out, pos, m)
	return out, nil
}

// Transform materializes this table under another domain. Variables
// already present are copied; derived variables are computed through
// their ColumnTransform from the source column. The receiver is left
// untouched.
func (t *Table) Transform(domain *Domain) (*Table, error) {
	const op = "Table.Transform"
	if domain == nil {
		return nil, errors.NewValidationError("domain", "must not be nil", nil)
	}
	rows := t.NumRows()

	x, err := t.materialize(op, domain.Attributes, rows)
	if err != nil {
		return nil, err
	}
	y, err := t.materialize(op, domain.ClassVars, rows)
	if err != nil {
		return nil, err
	}
	return &Table{X: x, Y: y, domain: domain}, nil
}

// materialize assembles the matrix for the given variables, computing
// derived columns where needed.
func (t *Table) materialize(op string, vars []Variable, rows int) (*mat.Dense, error) {
	if len(vars) == 0 {
		return nil, nil
	}
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	out := mat.NewDense(rows, len(vars), nil)
	for j, v := range vars {
		col, err := t.columnFor(op, v)
		if err != nil {
			return nil, err
		}
		out.SetCol(j, col)
	}
	return out, nil
}

// columnFor returns v's column, either straight from storage or through
// the variable's transform applied to its source column.
func (t *Table) columnFor(op string, v Variable) ([]float64, error) {
	if _, _, ok := t.domain.index(v); ok {
		return t.Column(v)
	}
	compute, source := computeOf(v)
	if compute == nil || source == nil {
		return nil, errors.NewValueError(op, fmt.Sprintf("variable %q is not in the domain and carries no transform", v.Name()))
	}
	src, err := t.Column(source)
	if err != nil {
		return nil, err
	}
	return compute.Transform(src), nil
}
