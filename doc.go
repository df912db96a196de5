// Package setpart enumerates the set partitions of {1..n} through
// restricted growth strings — lazily, exactly, and in superexponential
// spaces you could never materialize.
//
// 🚀 What is setpart?
//
//	A small, deterministic library that brings together:
//		• Algorithm V: every partition of {1..n} (Bell(n) of them)
//		• Algorithm X: partitions with exactly k blocks (Stirling S(n,k))
//		• Algorithm Y: an independent construction of the same k-block set,
//		  used to cross-validate Algorithm X
//		• Algorithm Z: partitions with k in a chosen range [kmin, kmax]
//		• Conversions between RGS form and explicit block lists
//		• Regular-polygon point layout for drawing the ground set
//
// ✨ Why choose setpart?
//
//   - Lazy by construction – every generator is an iter.Seq; stop after
//     the first L elements and only L elements were ever built
//   - Exact counts guaranteed – Bell and Stirling totals are contractual,
//     verified against independent recurrences
//   - Pure Go – no cgo, no hidden deps
//   - Fail-fast validation – bad n or k is rejected before any output
//
// Everything is organized under two subpackages plus a small CLI:
//
//	rgs/    — the enumeration engine (All / Exactly / ExactlyByRecurrence /
//	          Range / ToBlocks)
//	layout/ — n points as a regular polygon, for visual front ends
//
// Quick ASCII example:
//
//	n=4  RGS=[0 0 1 0]  ⇔  {1,2,4} | {3}
//
//	the string assigns element i+1 to block a[i]; labels grow by at
//	most one at a time, so every partition has exactly one encoding.
//
// Dive into rgs/doc.go for the algorithm family and the ordering,
// counting, and validity guarantees each generator carries.
//
//	go get github.com/katalvlaran/setpart/rgs
package setpart
