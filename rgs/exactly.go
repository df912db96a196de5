package rgs

import "iter"

// Exactly — Algorithm X
//
// Description:
//
//	Exactly enumerates every restricted growth string of length n whose
//	block count is exactly k, i.e. every partition of {1..n} into k
//	non-empty blocks. The total number of emissions equals the Stirling
//	number of the second kind S(n,k).
//
// Algorithm Outline:
//
//	The cursor from All is specialized twice:
//	 1. Ceiling: position j may never exceed min(b[j], k-1), so no string
//	    ever uses more than k labels.
//	 2. Forcing: with m = max of the prefix and n-i positions left, the
//	    final max can reach at most m+(n-i). Whenever m+(n-i) == k-1 the
//	    position is forced to raise the max (a[i] = m+1); choosing lower
//	    would strand the string below k blocks. Refilling a suffix with
//	    this rule always lands on a complete k-block string, so dead
//	    branches are never emitted — they are never even built.
//
//	Advance mirrors All: rightmost j ≥ 1 below its ceiling is
//	incremented and the suffix is refilled minimally. Order is
//	lexicographic, from the forced minimum (e.g. [0 0 0 1 2] for
//	n=5, k=3) up to the maximum [0 1 … k-1 k-1 … k-1].
//
// Edge cases:
//   - n == 0, k == 0 emits exactly one element, the empty RGS.
//   - k == 1 emits exactly the all-zero string.
//   - k == n emits exactly the identity labeling [0 1 … n-1].
//
// Complexity:
//
//	Time   = O(n) amortized per emission
//	Memory = O(n) scratch, private to this run
//
// Errors:
//   - ErrNegativeN  — if n < 0.
//   - ErrBlockCount — if k is outside [1, n] (k == 0 allowed only with
//     n == 0). Returned before any element is produced.
func Exactly(n, k int) (iter.Seq[RGS], error) {
	if err := validateExact(n, k); err != nil {
		return nil, err
	}

	return func(yield func(RGS) bool) {
		if n == 0 {
			yield(RGS{})

			return
		}

		a := make([]int, n)
		// b[i] = 1 + max(a[0..i-1]); b[0] == 0 stands for the empty prefix.
		b := make([]int, n+1)

		// refill writes the lexicographically smallest feasible suffix
		// starting at position j, raising the max exactly when forced.
		refill := func(j int) {
			for i := j; i < n; i++ {
				if b[i]+n-i == k {
					a[i] = b[i] // must raise the max to stay completable
				} else {
					a[i] = 0
				}
				if a[i]+1 > b[i] {
					b[i+1] = a[i] + 1
				} else {
					b[i+1] = b[i]
				}
			}
		}
		refill(0)

		for {
			if !yield(clone(a)) {
				return
			}

			// Rightmost position below its ceiling min(b[j], k-1).
			j := n - 1
			for j >= 1 {
				ceil := b[j]
				if ceil > k-1 {
					ceil = k - 1
				}
				if a[j] < ceil {
					break
				}
				j--
			}
			if j < 1 {
				return
			}

			a[j]++
			if a[j]+1 > b[j] {
				b[j+1] = a[j] + 1
			} else {
				b[j+1] = b[j]
			}
			refill(j + 1)
		}
	}, nil
}
