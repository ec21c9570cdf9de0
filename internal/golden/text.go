// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import (
	"slices"
)

// GoldText is a simple and slow text index, implemented as a plain slice
// of symbols, as a golden reference for the suffix tree.
type GoldText[S comparable] []S

// ContainsSubstring, brute force over all start positions.
func (t GoldText[S]) ContainsSubstring(pattern []S) bool {
	for i := 0; i+len(pattern) <= len(t); i++ {
		if slices.Equal(t[i:i+len(pattern)], pattern) {
			return true
		}
	}
	return false
}

// ContainsSuffix reports whether pattern is a suffix of the text, or,
// if the last symbol occurs nowhere else, a suffix of the text without it.
func (t GoldText[S]) ContainsSuffix(pattern []S) bool {
	if hasSuffix(t, pattern) {
		return true
	}

	if !t.MarkedEnd() {
		return false
	}
	return hasSuffix(t[:len(t)-1], pattern)
}

// MarkedEnd reports whether the last symbol is unique in the text.
func (t GoldText[S]) MarkedEnd() bool {
	if len(t) == 0 {
		return false
	}
	return !slices.Contains(t[:len(t)-1], t[len(t)-1])
}

// LongestRepeatedSuffix returns the length of the longest suffix
// that also occurs at an earlier position.
func (t GoldText[S]) LongestRepeatedSuffix() int {
	if len(t) == 0 {
		return 0
	}

	// an earlier occurrence ends before the last symbol
	head := t[:len(t)-1]

	for l := len(t) - 1; l > 0; l-- {
		if head.ContainsSubstring(t[len(t)-l:]) {
			return l
		}
	}
	return 0
}

// Suffixes returns all non-empty suffixes, longest first.
func (t GoldText[S]) Suffixes() [][]S {
	result := make([][]S, 0, len(t))
	for i := range t {
		result = append(result, t[i:])
	}
	return result
}

func hasSuffix[S comparable](text, pattern []S) bool {
	return len(pattern) <= len(text) && slices.Equal(text[len(text)-len(pattern):], pattern)
}
