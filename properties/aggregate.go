package properties

import "errors"

// ErrEmptySample is returned by Aggregate1 and Aggregate2 when given no
// trees to aggregate over.
var ErrEmptySample = errors.New("properties: no samples to aggregate")

// Sample holds one tree's sum of edge lengths D and the normalizer used
// to turn D into a dependency distance ratio: for an n-vertex tree this
// is conventionally n-1, its number of edges.
type Sample struct {
	D float64
	N float64
}

// Aggregate1 computes the 1-level aggregation of D over a set of trees —
// the ratio of the sum of all D_i to the sum of all normalizers N_i.
// This is lal::utilities::one_level_aggregation's generic
// \f$A_1(Q,R)=F_Q(\bigoplus Q_i)\odot F_R(\bigotimes R_i)\f$ specialized
// to plain sums for F_Q/F_R and division for \odot: equivalent to
// treating the whole corpus as if it were one giant tree.
func Aggregate1(samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySample
	}
	var sumD, sumN float64
	for _, s := range samples {
		sumD += s.D
		sumN += s.N
	}
	return sumD / sumN, nil
}

// Aggregate2 computes the 2-level aggregation of D over a set of trees —
// the mean of the individual per-tree ratios D_i/N_i. This is
// lal::utilities::two_level_aggregation's generic
// \f$A_2(Q,R)=F(\bigotimes (Q_i\oplus R_i))\f$ specialized to division
// for \oplus and a plain mean for F: unlike Aggregate1, every tree
// contributes one vote regardless of its size.
func Aggregate2(samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySample
	}
	var sumRatio float64
	for _, s := range samples {
		sumRatio += s.D / s.N
	}
	return sumRatio / float64(len(samples)), nil
}
