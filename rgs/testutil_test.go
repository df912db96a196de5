// Package rgs_test - shared reference helpers for the generator tests.
//
// Counts are never hard-coded alone: Bell and Stirling references are
// recomputed from their classical recurrences so a typo in a table cannot
// hide a generator bug.
package rgs_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/setpart/rgs"
)

// bell computes the Bell number B(n) via B(n) = Σ_k S(n,k) (B(0)=1).
func bell(n int) int {
	if n == 0 {
		return 1
	}
	total := 0
	for k := 1; k <= n; k++ {
		total += stirling2(n, k)
	}

	return total
}

// stirling2 computes S(n,k) via S(n,k) = k·S(n-1,k) + S(n-1,k-1).
func stirling2(n, k int) int {
	if n == 0 && k == 0 {
		return 1
	}
	if n == 0 || k == 0 || k > n {
		return 0
	}
	s := make([][]int, n+1)
	for i := range s {
		s[i] = make([]int, k+1)
	}
	s[0][0] = 1
	for i := 1; i <= n; i++ {
		top := i
		if top > k {
			top = k
		}
		for j := 1; j <= top; j++ {
			s[i][j] = j*s[i-1][j] + s[i-1][j-1]
		}
	}

	return s[n][k]
}

// isValidRGS reports whether a satisfies every RGS invariant: a[0]==0,
// a[i] ≤ 1+max(prefix), and compact labels 0..max with no gaps.
func isValidRGS(a rgs.RGS) bool {
	if len(a) == 0 {
		return true
	}
	if a[0] != 0 {
		return false
	}
	maxSeen := 0
	used := map[int]bool{0: true}
	for _, v := range a[1:] {
		if v < 0 || v > maxSeen+1 {
			return false
		}
		if v > maxSeen {
			maxSeen = v
		}
		used[v] = true
	}

	return len(used) == maxSeen+1
}

// collect drains a sequence into a slice.
func collect(seq iter.Seq[rgs.RGS]) []rgs.RGS {
	var out []rgs.RGS
	for a := range seq {
		out = append(out, a)
	}

	return out
}

// asSet keys each RGS by its string form for set-equality comparisons.
func asSet(list []rgs.RGS) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, a := range list {
		set[fmt.Sprint(a)] = true
	}

	return set
}
