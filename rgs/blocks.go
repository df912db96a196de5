package rgs

import "iter"

// ToBlocks projects a restricted growth string onto its explicit block
// decomposition: block j collects every ground-set element i+1 with
// a[i] == j. Blocks come out in ascending label order, each in ascending
// element order, so the result is the canonical form of the partition.
//
// Precondition: a must be a valid RGS as produced by this package's
// generators. ToBlocks is a plain projection — it performs no validity or
// compactness checking, and its grouping is undefined on malformed input
// (an element may land in a block whose label was never legally reachable).
//
// A length-0 input returns an empty block list, the partition of the
// empty set.
func ToBlocks(a RGS) [][]int {
	if len(a) == 0 {
		return [][]int{}
	}

	blocks := make([][]int, BlockCount(a))
	for i, label := range a {
		blocks[label] = append(blocks[label], i+1)
	}

	return blocks
}

// BlockCount reports the number of blocks encoded by a: 1+max(a), or 0
// for the empty RGS. Shares ToBlocks' precondition.
func BlockCount(a RGS) int {
	if len(a) == 0 {
		return 0
	}
	m := 0
	for _, v := range a {
		if v > m {
			m = v
		}
	}

	return m + 1
}

// AsBlocks adapts a stream of restricted growth strings into a stream of
// block decompositions, preserving order and laziness: each conversion
// runs only when its element is requested, and stopping the outer loop
// stops the inner generation.
func AsBlocks(seq iter.Seq[RGS]) iter.Seq[[][]int] {
	return func(yield func([][]int) bool) {
		for a := range seq {
			if !yield(ToBlocks(a)) {
				return
			}
		}
	}
}
