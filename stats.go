// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

// Stats describes the shape of a built tree.
type Stats struct {
	Size     int // indexed text symbols
	Inner    int // branching nodes, root and bottom not counted
	Leaves   int // open leaf edges
	Edges    int // transitions below root, leaf edges included
	Implicit int // longest suffix without its own leaf
}

// Stats returns the node and edge statistics, the zero value for an unbuilt tree.
// The virtual edges of bottom are not counted.
func (t *Tree[S]) Stats() Stats {
	if !t.isBuilt() {
		return Stats{}
	}

	s := Stats{
		Size:     t.size,
		Inner:    len(t.nodes) - 2,
		Implicit: t.implicitLen(),
	}

	for i := root; int(i) < len(t.nodes); i++ {
		s.Edges += t.nodes[i].numTransitions()

		for _, e := range t.nodes[i].transitions() {
			if e.child == noNode {
				s.Leaves++
			}
		}
	}

	return s
}
