// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

// Equal reports whether both trees have the same node graph, starting at
// bottom: same suffix links, same transitions with the same label bounds
// and recursively equal children. The texts themselves are not compared.
//
// Equal is meant for tests and verification, not for the query path.
func (t *Tree[S]) Equal(o *Tree[S]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t == o {
		return true
	}

	if len(t.nodes) == 0 || len(o.nodes) == 0 {
		return len(t.nodes) == len(o.nodes)
	}

	// suffix links may point backwards, even to the node itself
	compared := make(map[[2]NodeID]struct{}, len(t.nodes))

	return t.equalRec(o, bottom, bottom, compared)
}

// equalRec compares node n of t with node m of o recursively.
// A pair already in compared is treated as equal.
func (t *Tree[S]) equalRec(o *Tree[S], n, m NodeID, compared map[[2]NodeID]struct{}) bool {
	if n == noNode || m == noNode {
		return n == m
	}

	pair := [2]NodeID{n, m}
	if _, ok := compared[pair]; ok {
		return true
	}
	compared[pair] = struct{}{}

	nn, on := &t.nodes[n], &o.nodes[m]

	if !t.equalRec(o, nn.link, on.link, compared) {
		return false
	}

	if nn.numTransitions() != on.numTransitions() {
		return false
	}

	for rank, ne := range nn.transitions() {
		oe, ok := on.transition(rank)
		if !ok {
			return false
		}

		if ne.kind != oe.kind || ne.key != oe.key || ne.end != oe.end {
			return false
		}

		if !t.equalRec(o, ne.child, oe.child, compared) {
			return false
		}
	}

	return true
}
