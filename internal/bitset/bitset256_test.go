// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestZeroValue(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("A zero value bitset must not panic: %v", r)
		}
	}()

	var b BitSet256

	b = BitSet256{}
	b.MustSet(0)

	b = BitSet256{}
	b.Rank0(100)

	b = BitSet256{}
	b.Test(42)

	b = BitSet256{}
	b.NextSet(0)
}

func TestBitsetSetOutOfBounds(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("A MustSet() out of bounds MUST panic")
		}
	}()

	b := BitSet256{}
	b.MustSet(256)
}

func TestTest(t *testing.T) {
	t.Parallel()
	var b BitSet256
	b.MustSet(100)
	if !b.Test(100) {
		t.Errorf("Bit %d is clear, and it shouldn't be.", 100)
	}
	if b.Test(99) {
		t.Errorf("Bit %d is set, and it shouldn't be.", 99)
	}
	if b.Test(300) {
		t.Errorf("Bit %d is out of range, Test must report false", 300)
	}
}

func TestNextSet(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		set    []uint
		start  uint
		want   uint
		wantOk bool
	}{
		{
			name:   "null",
			set:    []uint{},
			start:  0,
			wantOk: false,
		},
		{
			name:   "zero",
			set:    []uint{0},
			start:  0,
			want:   0,
			wantOk: true,
		},
		{
			name:   "1,5 from 2",
			set:    []uint{1, 5},
			start:  2,
			want:   5,
			wantOk: true,
		},
		{
			name:   "cross word",
			set:    []uint{3, 200},
			start:  4,
			want:   200,
			wantOk: true,
		},
		{
			name:   "exhausted",
			set:    []uint{3, 200},
			start:  201,
			wantOk: false,
		},
		{
			name:   "out of range",
			set:    []uint{255},
			start:  256,
			wantOk: false,
		},
	}

	for _, tc := range testCases {
		var b BitSet256
		for _, u := range tc.set {
			b.MustSet(u)
		}

		got, ok := b.NextSet(tc.start)
		if ok != tc.wantOk {
			t.Errorf("NextSet, %s: got ok %v, want %v", tc.name, ok, tc.wantOk)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("NextSet, %s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNextSetWalk(t *testing.T) {
	t.Parallel()
	var b BitSet256
	want := []uint{0, 1, 63, 64, 65, 127, 128, 191, 192, 255}
	for _, u := range want {
		b.MustSet(u)
	}

	var got []uint
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		got = append(got, i)
	}

	if !slices.Equal(got, want) {
		t.Errorf("NextSet walk, got %v, want %v", got, want)
	}
}

// rankSlow counts the set bits in [0..idx] minus 1, the naive way.
func rankSlow(b *BitSet256, idx uint) int {
	rnk := 0
	for i := uint(0); i <= idx && i < 256; i++ {
		if b.Test(i) {
			rnk++
		}
	}
	return rnk - 1
}

func TestRank0(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 100 {
		var b BitSet256
		for range prng.IntN(256) {
			b.MustSet(uint(prng.IntN(256)))
		}

		for idx := range uint(256) {
			if got, want := b.Rank0(idx), rankSlow(&b, idx); got != want {
				t.Fatalf("Rank0(%d), got %d, want %d, words %x", idx, got, want, b)
			}
		}
	}
}
