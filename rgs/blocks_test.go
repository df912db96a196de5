package rgs_test

import (
	"testing"

	"github.com/katalvlaran/setpart/rgs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToBlocks_KnownDecompositions checks hand-built strings against
// their canonical block lists.
func TestToBlocks_KnownDecompositions(t *testing.T) {
	cases := []struct {
		name string
		in   rgs.RGS
		want [][]int
	}{
		{"one block", rgs.RGS{0, 0, 0}, [][]int{{1, 2, 3}}},
		{"all singletons", rgs.RGS{0, 1, 2}, [][]int{{1}, {2}, {3}}},
		{"interleaved", rgs.RGS{0, 1, 0, 1}, [][]int{{1, 3}, {2, 4}}},
		{"late new block", rgs.RGS{0, 0, 1, 0, 2}, [][]int{{1, 2, 4}, {3}, {5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rgs.ToBlocks(tc.in))
		})
	}
}

// TestToBlocks_EmptyRGS pins the documented n=0 convention: an empty
// block list, not an error.
func TestToBlocks_EmptyRGS(t *testing.T) {
	got := rgs.ToBlocks(rgs.RGS{})
	assert.NotNil(t, got, "empty input yields an empty list, not nil")
	assert.Empty(t, got, "the empty set has no blocks")
}

// TestBlockCount_Values checks 1+max(a) and the empty-string zero.
func TestBlockCount_Values(t *testing.T) {
	assert.Equal(t, 0, rgs.BlockCount(rgs.RGS{}), "empty RGS has zero blocks")
	assert.Equal(t, 1, rgs.BlockCount(rgs.RGS{0, 0, 0}))
	assert.Equal(t, 3, rgs.BlockCount(rgs.RGS{0, 1, 2, 0}))
}

// TestToBlocks_RoundTripAllGenerators verifies the projection on every
// string each generator produces: blocks ordered by label, elements
// ascending, first elements strictly increasing across blocks (the
// canonical-form consequence of restricted growth).
func TestToBlocks_RoundTripAllGenerators(t *testing.T) {
	const n = 5
	seq, err := rgs.Range(n, 1, n)
	require.NoError(t, err)

	for a := range seq {
		blocks := rgs.ToBlocks(a)
		require.Len(t, blocks, rgs.BlockCount(a), "block count mismatch for %v", a)

		prevLead := 0
		for _, b := range blocks {
			require.NotEmpty(t, b, "empty block from %v", a)
			assert.Greater(t, b[0], prevLead, "block leaders must increase for %v", a)
			prevLead = b[0]
			for i := 1; i < len(b); i++ {
				assert.Greater(t, b[i], b[i-1], "elements inside a block must increase for %v", a)
			}
		}
	}
}

// TestAsBlocks_PreservesOrderAndLaziness verifies the stream adapter:
// same order as mapping ToBlocks eagerly, and an early break stops the
// conversions along with the generation.
func TestAsBlocks_PreservesOrderAndLaziness(t *testing.T) {
	seq, err := rgs.All(4)
	require.NoError(t, err)
	var want [][][]int
	for a := range seq {
		want = append(want, rgs.ToBlocks(a))
	}

	seq, err = rgs.All(4)
	require.NoError(t, err)
	var got [][][]int
	for blocks := range rgs.AsBlocks(seq) {
		got = append(got, blocks)
	}
	assert.Equal(t, want, got, "adapter must match the eager mapping")

	seq, err = rgs.All(12)
	require.NoError(t, err)
	count := 0
	for range rgs.AsBlocks(seq) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count, "breaking the block stream must stop generation")
}
