package main

import (
	"testing"

	"github.com/katalvlaran/setpart/rgs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatRGS checks the string-form line body.
func TestFormatRGS(t *testing.T) {
	assert.Equal(t, "RGS=[0 1 0]  (#blocks=2)", formatRGS(rgs.RGS{0, 1, 0}))
	assert.Equal(t, "RGS=[]  (#blocks=0)", formatRGS(rgs.RGS{}))
}

// TestFormatBlocks checks the block-form line body.
func TestFormatBlocks(t *testing.T) {
	assert.Equal(t, "{1,3} | {2}", formatBlocks([][]int{{1, 3}, {2}}))
	assert.Equal(t, "{1,2,3}", formatBlocks([][]int{{1, 2, 3}}))
	assert.Equal(t, "", formatBlocks([][]int{}))
}

// TestSelectMode covers mode exclusivity, range parsing, and propagation
// of engine validation errors.
func TestSelectMode(t *testing.T) {
	_, err := selectMode(5, false, -1, -1, "")
	assert.Error(t, err, "no mode selected must error")

	_, err = selectMode(5, true, 2, -1, "")
	assert.Error(t, err, "two modes selected must error")

	_, err = selectMode(5, false, -1, -1, "2-4")
	assert.Error(t, err, "malformed range must error")

	_, err = selectMode(5, false, 9, -1, "")
	assert.ErrorIs(t, err, rgs.ErrBlockCount, "engine validation must surface")

	seq, err := selectMode(4, false, -1, -1, "2:3")
	require.NoError(t, err)
	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, 13, count, "S(4,2)+S(4,3) = 7+6")
}
