package rgs

import "iter"

// All — Algorithm V
//
// Description:
//
//	All enumerates every restricted growth string of length n, i.e. every
//	set partition of {1..n}. The total number of emissions equals the
//	Bell number B(n).
//
// Algorithm Outline:
//  1. Scratch arrays a, b of length n. a starts all-zero; b[i] is the
//     ceiling 1+max(a[0..i-1]) maintained incrementally (b[0] unused).
//  2. Emit a copy of a.
//  3. Advance: scan j from n-1 down to 1 for the rightmost a[j] < b[j].
//     No such j — the space is exhausted, stop.
//  4. Increment a[j]; for every i > j reset a[i] to 0 and set
//     b[i] = max(b[j], a[j]+1). Go to 2.
//
// The resulting order is lexicographic on the strings, with [0 0 … 0]
// (one block) first and [0 1 … n-1] (all singletons) last.
//
// Edge cases:
//   - n == 0 emits exactly one element, the empty RGS.
//   - n == 1 emits exactly one element, [0].
//
// Complexity:
//
//	Time   = O(n) amortized per emission
//	Memory = O(n) scratch, private to this run
//
// Errors:
//   - ErrNegativeN — if n < 0; returned before any element is produced.
func All(n int) (iter.Seq[RGS], error) {
	if err := validateN(n); err != nil {
		return nil, err
	}

	return func(yield func(RGS) bool) {
		if n == 0 {
			yield(RGS{})

			return
		}

		// Scratch state owned by this run only.
		a := make([]int, n)
		b := make([]int, n)
		for i := 1; i < n; i++ {
			b[i] = 1
		}

		for {
			if !yield(clone(a)) {
				return
			}

			// Rightmost position that can still grow.
			j := n - 1
			for j >= 1 && a[j] == b[j] {
				j--
			}
			if j < 1 {
				return
			}

			a[j]++
			// Ceiling for the reset suffix: the prefix max may have
			// just been raised by a[j].
			ceil := b[j]
			if a[j]+1 > ceil {
				ceil = a[j] + 1
			}
			for i := j + 1; i < n; i++ {
				a[i] = 0
				b[i] = ceil
			}
		}
	}, nil
}
