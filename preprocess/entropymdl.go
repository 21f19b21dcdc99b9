package preprocess

import (
	"fmt"

	"github.com/andyglick/orange3/data"
	"github.com/andyglick/orange3/stats"
)

// EntropyMDL discretizes by recursively splitting the value range to
// minimize class entropy, keeping each split only while its information
// gain outweighs the minimum description length cost of encoding it.
// When no cut survives, the feature comes back as a single constant bin
// that DomainDiscretizer can drop.
type EntropyMDL struct {
	// Force emits the best top-level cut even when its gain stays under
	// the MDL cost. Data with a single populated class still yields no
	// cuts.
	Force bool
}

var _ Discretization = (*EntropyMDL)(nil)

// NewEntropyMDL creates the strategy.
func NewEntropyMDL(force bool) *EntropyMDL {
	return &EntropyMDL{Force: force}
}

// String returns a short description of the strategy.
func (e *EntropyMDL) String() string {
	return fmt.Sprintf("EntropyMDL(force=%t)", e.Force)
}

// Discretize computes MDL-accepted cut points for v from its
// contingency with the class variable. The domain of src must carry a
// discrete class variable.
func (e *EntropyMDL) Discretize(src stats.Source, v data.Variable) (*data.DiscreteVariable, error) {
	cont, err := stats.GetContingency(src, v)
	if err != nil {
		return nil, err
	}
	points, err := CutPointsEntropyMDL(cont, e.Force)
	if err != nil {
		return nil, err
	}
	return NewDiscretizedVariable(v, points), nil
}

// CutPointsEntropyMDL returns the accepted cut points over an
// aggregated contingency. Each accepted split lands midway between the
// two distinct values it separates.
func CutPointsEntropyMDL(cont *stats.Contingency, force bool) ([]float64, error) {
	indices, err := entropyDiscretizeSorted(cont, force)
	if err != nil {
		return nil, err
	}
	points := make([]float64, len(indices))
	for i, cut := range indices {
		points[i] = (cont.Values[cut-1] + cont.Values[cut]) / 2
	}
	return points, nil
}
