// Package rgs defines the RGS value type, sentinel errors, and the
// validation helpers shared by every generator.
package rgs

import "errors"

// Sentinel errors for generator validation.
var (
	// ErrNegativeN is returned when the ground-set size n is negative.
	ErrNegativeN = errors.New("rgs: n must be non-negative")

	// ErrBlockCount is returned when k lies outside the legal range:
	// 1 ≤ k ≤ n for n ≥ 1, and k == 0 only for the empty ground set.
	ErrBlockCount = errors.New("rgs: block count k out of range")

	// ErrBlockRange is returned when a [kmin, kmax] request violates
	// 1 ≤ kmin ≤ kmax ≤ n.
	ErrBlockRange = errors.New("rgs: invalid block-count range")
)

// RGS is a restricted growth string: a[i] is the block label of ground-set
// element i+1, with a[0]==0 and a[i] ≤ 1+max(a[0..i-1]). Values produced
// by this package are freshly allocated per emission and safe to retain.
type RGS []int

// clone returns a caller-owned copy of the scratch buffer a.
func clone(a []int) RGS {
	out := make(RGS, len(a))
	copy(out, a)

	return out
}

// validateN rejects negative ground-set sizes.
func validateN(n int) error {
	if n < 0 {
		return ErrNegativeN
	}

	return nil
}

// validateExact checks the (n, k) contract shared by both "exactly k"
// generators: k==0 is legal only when n==0; otherwise 1 ≤ k ≤ n.
func validateExact(n, k int) error {
	if err := validateN(n); err != nil {
		return err
	}
	if n == 0 {
		if k != 0 {
			return ErrBlockCount
		}

		return nil
	}
	if k < 1 || k > n {
		return ErrBlockCount
	}

	return nil
}

// validateRange checks 1 ≤ kmin ≤ kmax ≤ n for Range.
func validateRange(n, kmin, kmax int) error {
	if err := validateN(n); err != nil {
		return err
	}
	if kmin < 1 || kmin > kmax || kmax > n {
		return ErrBlockRange
	}

	return nil
}
