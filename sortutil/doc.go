// Package sortutil provides the integer-keyed sorting primitives the
// linear-arrangement algorithms lean on instead of a general-purpose
// comparison sort: counting sort (stable, O(n+k) for keys in [0,k)) and a
// bit-sort specialization for the common case of sorting by a single
// boolean predicate.
//
// These mirror lal::detail::sorting::counting_sort, which every
// D-minimization and crossing-counting routine in the original library
// calls to sort vertices by degree, by first/last position, or by some
// other small-range integer key, always in either non-decreasing or
// non-increasing order.
package sortutil
