package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/andyglick/orange3/data"
)

// Distribution is the sorted aggregate of one column: strictly
// increasing distinct values paired with their occurrence counts.
// Missing values are excluded during aggregation.
type Distribution struct {
	// Values are the distinct non-missing values, strictly increasing.
	Values []float64

	// Counts holds the occurrence count of each value.
	Counts []float64
}

// GetDistribution aggregates the column of v from src. Rows holding a
// missing value are skipped; an all-missing or empty column yields an
// empty distribution.
func GetDistribution(src Source, v data.Variable) (*Distribution, error) {
	col, err := src.Column(v)
	if err != nil {
		return nil, err
	}

	vals := make([]float64, 0, len(col))
	for _, x := range col {
		if !math.IsNaN(x) {
			vals = append(vals, x)
		}
	}
	sort.Float64s(vals)

	dist := &Distribution{}
	for i := 0; i < len(vals); {
		j := i
		for j < len(vals) && vals[j] == vals[i] {
			j++
		}
		dist.Values = append(dist.Values, vals[i])
		dist.Counts = append(dist.Counts, float64(j-i))
		i = j
	}
	return dist, nil
}

// Empty reports whether the distribution holds no values.
func (d *Distribution) Empty() bool { return len(d.Values) == 0 }

// Total returns the number of aggregated instances.
func (d *Distribution) Total() float64 { return floats.Sum(d.Counts) }

// Min returns the smallest value, or NaN on an empty distribution.
func (d *Distribution) Min() float64 {
	if d.Empty() {
		return math.NaN()
	}
	return d.Values[0]
}

// Max returns the largest value, or NaN on an empty distribution.
func (d *Distribution) Max() float64 {
	if d.Empty() {
		return math.NaN()
	}
	return d.Values[len(d.Values)-1]
}

// Mean returns the count-weighted mean, or NaN on an empty distribution.
func (d *Distribution) Mean() float64 {
	if d.Empty() {
		return math.NaN()
	}
	return stat.Mean(d.Values, d.Counts)
}

// Variance returns the count-weighted unbiased sample variance, or NaN
// on an empty distribution.
func (d *Distribution) Variance() float64 {
	if d.Empty() {
		return math.NaN()
	}
	return stat.Variance(d.Values, d.Counts)
}

// StdDev returns the count-weighted sample standard deviation, or NaN
// on an empty distribution.
func (d *Distribution) StdDev() float64 {
	if d.Empty() {
		return math.NaN()
	}
	return stat.StdDev(d.Values, d.Counts)
}

// Quantile returns the smallest value whose cumulative count strictly
// exceeds p times the total. When no value does (p at or above 1), the
// largest value is returned; an empty distribution yields NaN.
func (d *Distribution) Quantile(p float64) float64 {
	if d.Empty() {
		return math.NaN()
	}
	threshold := p * d.Total()
	cum := 0.0
	for i, c := range d.Counts {
		cum += c
		if cum > threshold {
			return d.Values[i]
		}
	}
	return d.Values[len(d.Values)-1]
}
