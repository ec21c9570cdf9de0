// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import "fmt"

// build is Ukkonen's online construction, one phase per text symbol.
//
// (s, (k, i)) is the canonical reference pair of the active point,
// the longest suffix of text[1..i] that occurs at least twice.
func (t *Tree[S]) build() error {
	t.initSentinels()

	s, k := root, 1

	var err error
	for i := 0; t.text[i+1] != t.terminator; {
		i++

		if s, k, err = t.update(s, k, i); err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}

		if s, k, err = t.canonize(s, k, i); err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
	}

	t.activeNode, t.activeK = s, k
	return nil
}

// update transforms the tree for text[1..i-1] into the tree for text[1..i].
// (s, (k, i-1)) is the canonical reference pair for the active point.
func (t *Tree[S]) update(s NodeID, k, i int) (NodeID, int, error) {
	oldr := root
	rank := t.rank[i]

	endPoint, r, err := t.testAndSplit(s, k, i-1, rank)
	if err != nil {
		return s, k, err
	}

	for !endPoint {
		// rule 2, new leaf
		t.addEdge(r, i, open, noNode)

		if oldr != root {
			t.nodes[oldr].link = r
		}
		oldr = r

		if s, k, err = t.canonize(t.nodes[s].link, k, i-1); err != nil {
			return s, k, err
		}

		if endPoint, r, err = t.testAndSplit(s, k, i-1, rank); err != nil {
			return s, k, err
		}
	}

	if oldr != root {
		t.nodes[oldr].link = s
	}

	return s, k, nil
}

// canonize returns the canonical reference pair for (s, (k, p)),
// referenced from the closest explicit ancestor. Whole edges are
// skipped by their length without looking at the symbols.
func (t *Tree[S]) canonize(s NodeID, k, p int) (NodeID, int, error) {
	if p < k {
		return s, k, nil
	}

	e, err := t.findTransitionMatching(s, k)
	if err != nil {
		return s, k, err
	}

	for e.end-e.key <= p-k {
		k += e.end - e.key + 1
		s = e.child

		if k <= p {
			if e, err = t.findTransitionMatching(s, k); err != nil {
				return s, k, err
			}
		}
	}

	return s, k, nil
}

// testAndSplit tests whether (s, (k, p)) is the end point, the state
// that already has a transition for the symbol with rank. If not, the
// state is made explicit, splitting the edge if (k, p) is not empty.
func (t *Tree[S]) testAndSplit(s NodeID, k, p int, rank int) (bool, NodeID, error) {
	if k > p {
		return t.nodes[s].hasTransition(rank), s, nil
	}

	e, err := t.findTransitionMatching(s, k)
	if err != nil {
		return false, s, err
	}

	split := e.key + p - k + 1
	if t.rank[split] == rank {
		return true, s, nil
	}

	// g'(s, (k', k'+p-k)) = r and g'(r, (k'+p-k+1, p')) = s'
	r := t.newNode(t.nodes[s].depth + p - k + 1)
	t.addEdge(s, e.key, split-1, r)
	t.addEdge(r, split, e.end, e.child)

	return false, r, nil
}
