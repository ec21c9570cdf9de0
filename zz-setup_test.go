// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gaissmai/ukkonen/internal/golden"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// abbreviation
var rs = func(s string) []rune { return []rune(s) }

// mustBuild returns a built tree for text over alphabet, terminator '#'.
func mustBuild(tb testing.TB, text, alphabet string) *Tree[rune] {
	tb.Helper()

	tree, err := NewString(text, alphabet, '#')
	if err != nil {
		tb.Fatalf("NewString(%q, %q): %v", text, alphabet, err)
	}
	if err := tree.Build(); err != nil {
		tb.Fatalf("Build(%q): %v", text, err)
	}
	return tree
}

// fixture returns an unbuilt tree for text with bottom and root in place,
// ready to be wired by hand with newNode, addEdge and links.
func fixture(tb testing.TB, text, alphabet string) *Tree[rune] {
	tb.Helper()

	tree, err := NewString(text, alphabet, '#')
	if err != nil {
		tb.Fatalf("NewString(%q, %q): %v", text, alphabet, err)
	}
	tree.initSentinels()
	return tree
}

// alphabetOf returns the distinct symbols of s in order of appearance.
func alphabetOf(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !strings.ContainsRune(sb.String(), r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// randomText returns a text of length n over the symbols.
func randomText(prng *rand.Rand, symbols string, n int) string {
	syms := []rune(symbols)
	buf := make([]rune, n)
	for i := range buf {
		buf[i] = syms[prng.IntN(len(syms))]
	}
	return string(buf)
}

// isSuffixNaive is the reference for ContainsSuffix.
func isSuffixNaive(text, pattern string) bool {
	return golden.GoldText[rune](text).ContainsSuffix(rs(pattern))
}
