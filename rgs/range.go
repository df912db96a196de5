package rgs

import "iter"

// Range — Algorithm Z
//
// Description:
//
//	Range enumerates every restricted growth string of length n whose
//	block count lies in [kmin, kmax], as the lazy concatenation of
//	Exactly(n, k) for k = kmin..kmax in ascending order. The total number
//	of emissions equals S(n,kmin) + … + S(n,kmax); Range(n, 1, n) covers
//	the same set as All(n).
//
//	Ordering guarantee: all k-block strings precede all (k+1)-block
//	strings, and within one k the order is exactly Exactly's. Sub-
//	generators are created one at a time, only when the previous k is
//	drained, so early stops never pay for later k.
//
// Complexity:
//
//	Time   = O(n) amortized per emission
//	Memory = O(n) scratch for the single active sub-generator
//
// Errors:
//   - ErrNegativeN  — if n < 0.
//   - ErrBlockRange — unless 1 ≤ kmin ≤ kmax ≤ n. Returned before any
//     element is produced.
func Range(n, kmin, kmax int) (iter.Seq[RGS], error) {
	if err := validateRange(n, kmin, kmax); err != nil {
		return nil, err
	}

	return func(yield func(RGS) bool) {
		for k := kmin; k <= kmax; k++ {
			// k is in [1, n] here, so Exactly cannot fail.
			seq, _ := Exactly(n, k)
			for a := range seq {
				if !yield(a) {
					return
				}
			}
		}
	}, nil
}
