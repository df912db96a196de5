package rgs

import "iter"

// ExactlyByRecurrence — Algorithm Y
//
// Description:
//
//	ExactlyByRecurrence enumerates the same set as Exactly(n, k) through a
//	structurally independent construction: the two-term Stirling
//	recurrence S(n,k) = k·S(n-1,k) + S(n-1,k-1), read constructively.
//	Element n either joins one of the k blocks of a k-block partition of
//	{1..n-1}, or founds block k-1 on top of a (k-1)-block partition of
//	{1..n-1}.
//
//	The two generators cross-validate each other: any divergence in their
//	output sets exposes a bug in one of them. Their emission orders
//	differ and neither is contractual — compare as sets.
//
// Algorithm Outline:
//
//	Lazy continuation-passing recursion. recurrence(n, k, emit) feeds
//	every (n-1)-prefix to a continuation that appends each of the k
//	legal join labels, then every (n-1, k-1)-prefix to one that appends
//	the fresh label k-1. Emitted slices are built fresh per string;
//	consumer stop propagates back up through the emit return value.
//
// Edge cases: identical to Exactly (n==0/k==0 → one empty RGS; k==1 →
// all zeros; k==n → identity labeling).
//
// Complexity:
//
//	Time   = O(n) per emission plus the O(n)-deep recursion spine
//	Memory = O(n²) live prefixes on the recursion path
//
// Errors:
//   - ErrNegativeN  — if n < 0.
//   - ErrBlockCount — if k is outside [1, n] (k == 0 allowed only with
//     n == 0). Returned before any element is produced.
func ExactlyByRecurrence(n, k int) (iter.Seq[RGS], error) {
	if err := validateExact(n, k); err != nil {
		return nil, err
	}

	return func(yield func(RGS) bool) {
		recurrence(n, k, yield)
	}, nil
}

// recurrence emits every length-n string with exactly k labels to emit,
// stopping (and reporting false) as soon as emit does.
func recurrence(n, k int, emit func(RGS) bool) bool {
	if n == 0 {
		if k == 0 {
			return emit(RGS{})
		}

		return true
	}
	if k < 1 || k > n {
		return true
	}

	// k·S(n-1,k): element n joins one of the k existing blocks.
	join := func(prefix RGS) bool {
		for v := 0; v < k; v++ {
			next := make(RGS, n)
			copy(next, prefix)
			next[n-1] = v
			if !emit(next) {
				return false
			}
		}

		return true
	}
	if !recurrence(n-1, k, join) {
		return false
	}

	// S(n-1,k-1): element n founds the new top block k-1.
	spawn := func(prefix RGS) bool {
		next := make(RGS, n)
		copy(next, prefix)
		next[n-1] = k - 1

		return emit(next)
	}

	return recurrence(n-1, k-1, spawn)
}
