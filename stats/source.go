// Package stats computes the sorted aggregates the preprocessing
// strategies consume: per-variable value distributions and
// value-by-class contingencies. All row scanning happens here, so the
// strategies themselves never touch raw data.
package stats

import "github.com/andyglick/orange3/data"

// Source is the minimal read surface the statistics routines need.
// *data.Table satisfies it; external backends can implement it over
// their own storage.
type Source interface {
	// Domain returns the schema of the data.
	Domain() *data.Domain
	// Column returns a fresh copy of the column belonging to v.
	Column(v data.Variable) ([]float64, error)
}

var _ Source = (*data.Table)(nil)

// QuantileSource is implemented by backends that can produce order
// statistics without shipping the whole column, for example a database
// table. Results must be numerically identical to
// (*Distribution).Quantile on the same data.
type QuantileSource interface {
	// Quantiles returns the column value at each of the given fractions,
	// in the same order.
	Quantiles(v data.Variable, fractions []float64) ([]float64, error)
}

// RangeSource is implemented by backends that know column extrema
// without a scan.
type RangeSource interface {
	// Range returns the smallest and largest non-missing value of v's
	// column.
	Range(v data.Variable) (min, max float64, err error)
}
