// Package preprocess implements feature discretization: turning a
// continuous variable into a small ordered set of intervals.
//
// EqualFreq and EqualWidth compute their cut points in closed form from
// a value distribution. EntropyMDL searches for cut points that
// minimize class entropy and keeps each split only while its
// information gain outweighs the minimum description length cost of
// encoding it (Fayyad and Irani, 1993).
//
// A strategy produces a data.DiscreteVariable whose Compute transform
// maps raw values into bin indices, so a learned binning can be applied
// to any table that still holds the source column. DomainDiscretizer
// applies a strategy across a whole schema. Normalizer is the sibling
// preprocessor that rescales continuous variables instead of binning
// them.
package preprocess
