// Package rgs enumerates set partitions of {1..n} as restricted growth
// strings, with exact Bell/Stirling totals and lazy, stoppable streams.
//
// What
//
//   - An RGS of length n is an int slice a[0..n-1] with a[0]==0 and
//     a[i] ≤ 1+max(a[0..i-1]); element i+1 belongs to block a[i].
//     Labels are compact (0..m with no gaps), so RGS ↔ partition is 1:1.
//   - Four generators, one conversion:
//   - All(n)                  — every partition; Bell(n) strings
//   - Exactly(n, k)           — exactly k blocks; S(n,k) strings
//   - ExactlyByRecurrence(n,k)— same set as Exactly, independent
//     construction (cross-validation)
//   - Range(n, kmin, kmax)    — block count within [kmin, kmax]
//   - ToBlocks(a)             — RGS → explicit block lists over {1..n}
//
// Why
//
//   - Bell(n) grows superexponentially; materializing the result set is
//     infeasible for even modest n. Every generator is an iter.Seq[RGS]:
//     break out of the range loop and nothing further is computed.
//   - Two independent "exactly k" constructions make miscounts loud:
//     their outputs must agree as sets, and totals must match the
//     Stirling recurrence exactly.
//
// Determinism
//
//	Each generator emits a fixed order for fixed arguments. All and
//	Exactly are lexicographic by construction; ExactlyByRecurrence
//	follows the recurrence's own order. Only set equality between the
//	two "exactly" variants is contractual.
//
// Laziness & Ownership
//
//	Generation state lives in scratch buffers private to one run; every
//	emitted RGS is freshly allocated and owned by the caller. Concurrent
//	runs — same or different arguments — never share state.
//
// Complexity
//
//   - Time:   O(n) per emitted string (amortized advance + copy)
//   - Memory: O(n) scratch per active run, O(n) per emitted value
//
// Errors
//
//   - ErrNegativeN   — n < 0
//   - ErrBlockCount  — k outside its legal range for n
//   - ErrBlockRange  — kmin/kmax violate 1 ≤ kmin ≤ kmax ≤ n
//
// All validation happens before the sequence is returned; a non-nil
// error means no element was or will be produced.
//
// Usage
//
//	seq, err := rgs.All(5)
//	if err != nil { /* ErrNegativeN */ }
//	for a := range seq {
//	    fmt.Println(a, rgs.ToBlocks(a))
//	}
package rgs
