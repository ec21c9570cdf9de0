// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import "slices"

// ContainsSubstring reports whether pattern occurs in the text.
// The empty pattern is a substring of every text. Symbols outside
// the alphabet never match.
func (t *Tree[S]) ContainsSubstring(pattern []S) bool {
	if !t.isBuilt() {
		return false
	}
	if len(pattern) == 0 {
		return true
	}

	_, _, ok := t.locate(pattern)
	return ok
}

// ContainsSuffix reports whether pattern is a suffix of the text.
//
// If the last text symbol is a unique end marker, e.g. the '$' in "banana$",
// a suffix of the text without this marker is reported as suffix too:
// "ana" and "ana$" are both suffixes of "banana$".
func (t *Tree[S]) ContainsSuffix(pattern []S) bool {
	if !t.isBuilt() {
		return false
	}
	if len(pattern) == 0 {
		return true
	}

	e, m, ok := t.locate(pattern)
	if !ok {
		return false
	}

	// position right behind the match on this edge
	next := e.key + m

	// this occurrence ends at the end of the text
	if next == t.size+1 {
		return true
	}

	// Suffixes up to the length of the final active point are not leaves,
	// their points in the tree may be labeled by an earlier occurrence.
	if len(pattern) <= t.implicitLen() {
		return slices.Equal(pattern, t.text[t.size+1-len(pattern):t.size+1])
	}

	if !t.marked {
		return false
	}

	// followed by the end marker, mid-edge ...
	if next <= t.labelEnd(e) {
		return next == t.size
	}

	// ... or as first symbol of a transition from the child
	return e.child != noNode && t.hasTransitionFor(e.child, t.text[t.size])
}

// locate walks pattern down from root. It returns the edge where the walk
// stopped and the number of label symbols consumed on it.
func (t *Tree[S]) locate(pattern []S) (e edge, m int, ok bool) {
	n := root
	i := 0

	for {
		if e, ok = t.findTransitionFor(n, pattern[i]); !ok {
			return e, 0, false
		}

		// compare the overlapping part with the edge label
		m = min(t.labelEnd(e)-e.key+1, len(pattern)-i)
		if !slices.Equal(pattern[i:i+m], t.text[e.key:e.key+m]) {
			return e, 0, false
		}

		if i += m; i == len(pattern) {
			return e, m, true
		}

		// label exhausted, pattern not
		if e.child == noNode {
			return e, 0, false
		}
		n = e.child
	}
}

// implicitLen is the string depth of the final active point, the length
// of the longest suffix that occurs somewhere else in the text too.
func (t *Tree[S]) implicitLen() int {
	return max(0, t.nodes[t.activeNode].depth+t.size-t.activeK+1)
}
