// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import (
	"fmt"
	"sync"
)

// Tree is a suffix tree for a fixed text over a fixed alphabet with symbols S.
//
// Create it with [New] or [NewString], call [Tree.Build] once and query it
// with [Tree.ContainsSubstring] and [Tree.ContainsSuffix]. After Build returns,
// the tree is read-only and safe for concurrent use by any number of readers.
//
// Readers must not start before Build has returned. Concurrent Build calls
// are synchronized, a query running concurrently with Build is a data race.
type Tree[S comparable] struct {
	// augmented text, text[0] is a placeholder and text[size+1] the terminator
	text []S

	// alphabet rank of every text position, same indices as text
	rank []int

	// number of symbols without placeholder and terminator
	size int

	terminator S

	// alphabet symbols in rank order, duplicates removed
	alphabet []S
	ranks    map[S]int

	// last text symbol is a unique end marker, e.g. '$'
	marked bool

	// the node arena, bottom and root included
	nodes []node

	// canonical reference pair of the final active point
	activeNode NodeID
	activeK    int

	buildOnce sync.Once
	buildErr  error
}

// New validates the configuration and prepares a tree for text over alphabet.
// The terminator must neither occur in text nor in the alphabet, every text
// symbol must be part of the alphabet. Duplicate alphabet symbols are ignored.
func New[S comparable](text, alphabet []S, terminator S) (*Tree[S], error) {
	t := &Tree[S]{
		terminator: terminator,
		ranks:      make(map[S]int, len(alphabet)),
	}

	for _, sym := range alphabet {
		if sym == terminator {
			return nil, fmt.Errorf("%w: %s", ErrTerminatorInAlphabet, symString(sym))
		}
		if _, ok := t.ranks[sym]; ok {
			continue
		}
		t.ranks[sym] = len(t.alphabet)
		t.alphabet = append(t.alphabet, sym)
	}

	if len(t.alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	t.size = len(text)
	t.text = make([]S, t.size+2)
	t.rank = make([]int, t.size+2)

	for i, sym := range text {
		if sym == terminator {
			return nil, fmt.Errorf("%w: position %d", ErrTerminatorInText, i+1)
		}
		rank, ok := t.ranks[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %s at position %d", ErrSymbolNotInAlphabet, symString(sym), i+1)
		}
		t.text[i+1] = sym
		t.rank[i+1] = rank
	}
	t.text[t.size+1] = terminator

	t.marked = t.size > 0 && isUniqueLast(text)

	return t, nil
}

// NewString is a convenience wrapper around [New] for texts of runes.
func NewString(text, alphabet string, terminator rune) (*Tree[rune], error) {
	return New([]rune(text), []rune(alphabet), terminator)
}

// Build constructs the suffix tree. The construction runs exactly once,
// concurrent and subsequent calls wait for it and return the same result.
//
// A non-nil error wraps [ErrNoTransition], the tree is unusable and
// all queries report false.
func (t *Tree[S]) Build() error {
	t.buildOnce.Do(func() {
		if t.buildErr = t.build(); t.buildErr != nil {
			t.nodes = nil
		}
	})
	return t.buildErr
}

// Root returns the id of the root node.
func (t *Tree[S]) Root() NodeID {
	return root
}

// Bottom returns the id of the auxiliary node below root.
func (t *Tree[S]) Bottom() NodeID {
	return bottom
}

// Size returns the number of indexed text symbols.
func (t *Tree[S]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// isBuilt reports whether the node graph is ready for queries.
// It reads the arena unsynchronized, see [Tree] for the ordering rule.
func (t *Tree[S]) isBuilt() bool {
	return t != nil && len(t.nodes) > int(root)
}

// initSentinels creates bottom and root. Bottom gets one virtual edge
// per alphabet symbol to root, root links back to bottom.
func (t *Tree[S]) initSentinels() {
	t.nodes = make([]node, 0, 2*t.size+2)
	t.newNode(-1) // bottom
	t.newNode(0)  // root

	for j := range t.alphabet {
		t.addEdge(bottom, -(j + 1), -(j + 1), root)
	}
	t.nodes[root].link = bottom
}

// isUniqueLast reports whether the last symbol occurs nowhere else.
func isUniqueLast[S comparable](text []S) bool {
	last := text[len(text)-1]
	for _, sym := range text[:len(text)-1] {
		if sym == last {
			return false
		}
	}
	return true
}

// symString formats a single symbol, runes and bytes as characters.
func symString[S comparable](sym S) string {
	switch v := any(sym).(type) {
	case rune:
		return string(v)
	case byte:
		return string(rune(v))
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
