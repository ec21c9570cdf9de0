// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size bitset for the
// alphabet ranks [0..255] of the suffix tree transitions.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote needed parts from scratch for this project.
package bitset

import "math/bits"

// just as an explanation of the expressions,
//
//   i>>6 or i<<6 and i&63
//
// i>>6 is the word index and i&63 the bit index in the word,
// not factored out as functions to keep the methods inlineable.

// BitSet256 represents a fixed size bitset from [0..255]
type BitSet256 [4]uint64

// MustSet sets the bit, it panic's if bit is > 255 by intention!
func (b *BitSet256) MustSet(bit uint) {
	b[bit>>6] |= 1 << (bit & 63)
}

// Test if the bit is set.
func (b *BitSet256) Test(bit uint) (ok bool) {
	if x := int(bit >> 6); x < 4 {
		return b[x&3]&(1<<(bit&63)) != 0 // [x&3] is bounds check elimination (BCE)
	}
	return
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b *BitSet256) NextSet(bit uint) (uint, bool) {
	wIdx := int(bit >> 6)
	if wIdx >= 4 {
		return 0, false
	}

	// process the first (maybe partial) word
	first := b[wIdx&3] >> (bit & 63)
	if first != 0 {
		return bit + uint(bits.TrailingZeros64(first)), true
	}

	// process the following words until next bit is set
	wIdx++
	for jIdx, word := range b[wIdx:] {
		if word != 0 {
			return uint((wIdx+jIdx)<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Rank0 returns the set bits up to and including to idx, minus 1.
// The result is used as slice index in the sparse array.
func (b *BitSet256) Rank0(idx uint) (rnk int) {
	// Rank count is inclusive
	idx++
	wIdx := min(4, int(idx>>6))

	// sum up the popcounts until wIdx ...
	for jIdx := range wIdx {
		rnk += bits.OnesCount64(b[jIdx])
	}

	// ... plus partial word at wIdx,
	if wIdx < 4 {
		rnk += bits.OnesCount64(b[wIdx&3] << (64 - idx&63))
	}

	// decrement for offset by one
	rnk--
	return
}
