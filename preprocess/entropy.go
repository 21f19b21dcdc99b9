package preprocess

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/andyglick/orange3/pkg/errors"
	"github.com/andyglick/orange3/stats"
)

// machineEps is the double precision machine epsilon. Probabilities are
// clipped to it before taking logarithms.
var machineEps = math.Nextafter(1, 2) - 1

// entropy returns the Shannon entropy, in bits, of an unnormalized
// count distribution. The unclipped probability multiplies the
// logarithm, so zero counts contribute exactly zero.
func entropy(counts []float64) float64 {
	total := floats.Sum(counts)
	h := 0.0
	for _, c := range counts {
		p := errors.SafeDivide(c, total, 0)
		h -= p * math.Log2(errors.ClipValue(p, machineEps, 1))
	}
	return h
}

// entropyCutsSorted computes, for every interior position of the row
// range [lo, hi) of counts, the class information entropy of the
// two-way partition at that position, together with the entropies of
// the left and right parts. Position i splits the range into rows
// [lo, lo+i+1) and [lo+i+1, hi); all three slices have hi-lo-1 entries.
func entropyCutsSorted(counts *mat.Dense, lo, hi int) (e, es1, es2 []float64) {
	n := hi - lo
	if n < 2 {
		return nil, nil, nil
	}
	_, k := counts.Dims()
	m := n - 1

	e = make([]float64, m)
	es1 = make([]float64, m)
	es2 = make([]float64, m)
	s1Count := make([]float64, m)
	s2Count := make([]float64, m)

	// Cumulative class counts swept from the left, then from the right.
	acc := make([]float64, k)
	for i := 0; i < m; i++ {
		floats.Add(acc, counts.RawRowView(lo+i))
		es1[i] = entropy(acc)
		s1Count[i] = floats.Sum(acc)
	}

	for i := range acc {
		acc[i] = 0
	}
	for i := m - 1; i >= 0; i-- {
		floats.Add(acc, counts.RawRowView(lo+i+1))
		es2[i] = entropy(acc)
		s2Count[i] = floats.Sum(acc)
	}

	total := s1Count[m-1] + s2Count[m-1]
	for i := 0; i < m; i++ {
		e[i] = (s1Count[i]*es1[i] + s2Count[i]*es2[i]) / total
	}
	return e, es1, es2
}

// entropyDiscretizeSorted finds the accepted cut indices over the
// contingency rows. Segments wait on an explicit worklist, so the
// search depth never grows the call stack. A returned index i means a
// split between rows i-1 and i. Force applies to the whole-range
// decision only: when that split is rejected it is emitted anyway,
// while sub-segments are never forced.
func entropyDiscretizeSorted(cont *stats.Contingency, force bool) ([]int, error) {
	const op = "EntropyMDL.Discretize"

	n := cont.NumValues()
	if n == 0 || cont.Total() == 0 {
		return nil, errors.NewValueError(op, "contingency holds no instances")
	}
	// A single populated class carries nothing to split on.
	if cont.PopulatedClasses() < 2 {
		return nil, nil
	}

	type segment struct {
		lo, hi int
	}
	worklist := []segment{{0, n}}
	root := true

	var cuts []int
	for len(worklist) > 0 {
		seg := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		isRoot := root
		root = false

		e, es1, es2 := entropyCutsSorted(cont.Counts, seg.lo, seg.hi)
		if len(e) == 0 {
			continue
		}

		// The first minimum wins, so ties resolve deterministically.
		pos := floats.MinIdx(e)
		cut := seg.lo + pos + 1

		k := cont.NumClasses()
		leftDist := make([]float64, k)
		for i := seg.lo; i < cut; i++ {
			floats.Add(leftDist, cont.Counts.RawRowView(i))
		}
		segDist := make([]float64, k)
		copy(segDist, leftDist)
		for i := cut; i < seg.hi; i++ {
			floats.Add(segDist, cont.Counts.RawRowView(i))
		}
		rightDist := make([]float64, k)
		floats.SubTo(rightDist, segDist, leftDist)

		es := entropy(segDist)
		gain := es - e[pos]
		classes := float64(countPositive(segDist))
		k1 := float64(countPositive(leftDist))
		k2 := float64(countPositive(rightDist))

		delta := math.Log2(math.Pow(3, classes)-2) - (classes*es - k1*es1[pos] - k2*es2[pos])
		total := floats.Sum(segDist)

		if gain > math.Log2(total-1)/total+delta/total {
			cuts = append(cuts, cut)
			if k1 > 1 && pos > 0 {
				worklist = append(worklist, segment{seg.lo, cut})
			}
			if k2 > 1 && cut < seg.hi-1 {
				worklist = append(worklist, segment{cut, seg.hi})
			}
		} else if isRoot && force {
			cuts = append(cuts, cut)
		}
	}

	sort.Ints(cuts)
	return cuts, nil
}

// countPositive returns the number of strictly positive entries.
func countPositive(values []float64) int {
	c := 0
	for _, v := range values {
		if v > 0 {
			c++
		}
	}
	return c
}
