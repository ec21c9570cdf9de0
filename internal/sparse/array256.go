// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a special sparse array
// with popcount compression for max. 256 items.
//
// The suffix tree stores the outgoing transitions of a node
// in such an array, indexed by the alphabet rank of the
// first symbol of the edge label.
package sparse

import (
	"iter"

	"github.com/gaissmai/ukkonen/internal/bitset"
)

// Array256 is a generic implementation of a sparse array
// with popcount compression for max. 256 items with payload T.
type Array256[T any] struct {
	bitset.BitSet256
	Items []T
}

// MustSet of the underlying bitset is forbidden. The bitset and the items are coupled.
// An unsynchronized Set() disturbs the coupling between bitset and Items[].
func (a *Array256[T]) MustSet(uint) {
	panic("forbidden, use InsertAt")
}

// Get the value at i from sparse array.
//
// example: a.Get(5) -> a.Items[1]
//
//	                        ⬇
//	BitSet256:   [0|0|1|0|0|1|0|...|1] <- 3 bits set
//	Items:       [*|*|*]               <- len(Items) = 3
//	                ⬆
//
//	BitSet256.Test(5):     true
//	BitSet256.Rank0(5):    1, popcount in [0,5] minus 1
func (a *Array256[T]) Get(i uint8) (value T, ok bool) {
	if a.Test(uint(i)) {
		return a.Items[a.Rank0(uint(i))], true
	}
	return
}

// Len returns the number of items in sparse array.
func (a *Array256[T]) Len() int {
	return len(a.Items)
}

// InsertAt a value at i into the sparse array.
// If the value already exists, overwrite it with val and return true.
func (a *Array256[T]) InsertAt(i uint8, value T) (exists bool) {
	// slot exists, overwrite value
	if a.Test(uint(i)) {
		a.Items[a.Rank0(uint(i))] = value
		return true
	}

	// new, insert into bitset ...
	a.BitSet256.MustSet(uint(i))

	// ... and slice
	a.insertItem(a.Rank0(uint(i)), value)

	return false
}

// All iterates over the index/value pairs in ascending index order.
func (a *Array256[T]) All() iter.Seq2[uint8, T] {
	return func(yield func(uint8, T) bool) {
		j := 0
		for i, ok := a.NextSet(0); ok; i, ok = a.NextSet(i + 1) {
			if !yield(uint8(i), a.Items[j]) {
				return
			}
			j++
		}
	}
}

// insertItem inserts the item at index i, shift the rest one pos right
//
// It panics if i is out of range.
func (a *Array256[T]) insertItem(i int, item T) {
	if len(a.Items) < cap(a.Items) {
		a.Items = a.Items[:len(a.Items)+1] // fast resize, no alloc
	} else {
		var zero T
		a.Items = append(a.Items, zero) // append one item, mostly enlarge cap by more than one item
	}

	_ = a.Items[i]                   // BCE
	copy(a.Items[i+1:], a.Items[i:]) // shift one slot right, starting at [i]
	a.Items[i] = item                // insert new item at [i]
}
