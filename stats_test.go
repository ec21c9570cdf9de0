// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import (
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/ukkonen/internal/golden"
)

func TestStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		alphabet string
		want     Stats
	}{
		{"", "a", Stats{}},
		{"c", "aco", Stats{Size: 1, Leaves: 1, Edges: 1}},
		{"caca", "aco", Stats{Size: 4, Leaves: 2, Edges: 2, Implicit: 2}},
		{"cacao", "aco", Stats{Size: 5, Inner: 2, Leaves: 5, Edges: 7}},
		{"banana$", "$abn", Stats{Size: 7, Inner: 3, Leaves: 7, Edges: 10}},
		{"mississippi$", "$imps", Stats{Size: 12, Inner: 6, Leaves: 12, Edges: 18}},
		{"aaaa", "a", Stats{Size: 4, Leaves: 1, Edges: 1, Implicit: 3}},
	}

	for _, tt := range tests {
		if got := mustBuild(t, tt.text, tt.alphabet).Stats(); got != tt.want {
			t.Errorf("%q: Stats, got %+v, want %+v", tt.text, got, tt.want)
		}
	}

	unbuilt, _ := NewString("cacao", "aco", '#')
	if got := unbuilt.Stats(); got != (Stats{}) {
		t.Errorf("Stats before Build, got %+v", got)
	}
}

func TestStatsGolden(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range workLoadN() {
		text := randomText(prng, "abc", prng.IntN(40))
		tree := mustBuild(t, text, "abc")
		gold := golden.GoldText[rune](text)

		s := tree.Stats()
		if want := gold.LongestRepeatedSuffix(); s.Implicit != want {
			t.Fatalf("%q: Implicit, got %d, want %d", text, s.Implicit, want)
		}

		// every suffix longer than the implicit one ends in its own leaf
		if want := len(gold) - s.Implicit; s.Leaves != want {
			t.Fatalf("%q: Leaves, got %d, want %d", text, s.Leaves, want)
		}

		// every node below root has exactly one incoming edge
		if want := s.Leaves + s.Inner; s.Edges != want {
			t.Fatalf("%q: Edges, got %d, want %d", text, s.Edges, want)
		}

		for _, suffix := range gold.Suffixes() {
			if !tree.ContainsSuffix(suffix) {
				t.Fatalf("%q: ContainsSuffix(%q), got false", text, string(suffix))
			}
		}
	}
}
