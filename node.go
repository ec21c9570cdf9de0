// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/gaissmai/ukkonen/internal/sparse"
)

// NodeID addresses a node in the arena of a [Tree].
type NodeID int32

const (
	bottom NodeID = 0  // auxiliary state below root
	root   NodeID = 1  // the empty string
	noNode NodeID = -1 // absent child (leaf) or absent suffix link
)

// open is the end of a leaf edge. The text is fixed before construction,
// all label lookups clip it to the text length.
const open = math.MaxInt

type edgeKind uint8

const (
	textEdge    edgeKind = iota // label text[key..end]
	virtualEdge                 // bottom only, one per alphabet symbol, always to root
)

// edge is a transition g'(s, (key, end)) = child.
type edge struct {
	key   int
	end   int
	child NodeID
	kind  edgeKind
}

// node is a vertex in the arena, leaves have no arena entry.
type node struct {
	link  NodeID // suffix link, navigational only
	depth int    // string depth, -1 for bottom

	// transitions, indexed by the alphabet rank of the first label symbol
	edges sparse.Array256[edge]

	// transitions for ranks >= 256, large alphabets only
	wide map[int]edge
}

// transition returns the edge for the alphabet rank.
func (nd *node) transition(rank int) (edge, bool) {
	if rank < 256 {
		return nd.edges.Get(uint8(rank))
	}
	e, ok := nd.wide[rank]
	return e, ok
}

func (nd *node) hasTransition(rank int) bool {
	if rank < 256 {
		return nd.edges.Test(uint(rank))
	}
	_, ok := nd.wide[rank]
	return ok
}

// setTransition inserts or overwrites the edge for the alphabet rank.
func (nd *node) setTransition(rank int, e edge) {
	if rank < 256 {
		nd.edges.InsertAt(uint8(rank), e)
		return
	}
	if nd.wide == nil {
		nd.wide = make(map[int]edge)
	}
	nd.wide[rank] = e
}

func (nd *node) numTransitions() int {
	return nd.edges.Len() + len(nd.wide)
}

// transitions iterates over the rank/edge pairs in ascending rank order.
func (nd *node) transitions() iter.Seq2[int, edge] {
	return func(yield func(int, edge) bool) {
		for rank, e := range nd.edges.All() {
			if !yield(int(rank), e) {
				return
			}
		}
		for _, rank := range slices.Sorted(maps.Keys(nd.wide)) {
			if !yield(rank, nd.wide[rank]) {
				return
			}
		}
	}
}

// newNode appends a node to the arena and returns its id.
// Pointers into the arena are invalid after this call.
func (t *Tree[S]) newNode(depth int) NodeID {
	t.nodes = append(t.nodes, node{link: noNode, depth: depth})
	return NodeID(len(t.nodes) - 1)
}

// addEdge inserts or overwrites the transition of n with the given key.
// Negative keys -j are the virtual edges for the alphabet symbol with rank j-1.
func (t *Tree[S]) addEdge(n NodeID, key, end int, child NodeID) {
	e := edge{key: key, end: end, child: child}

	var rank int
	if key < 0 {
		e.kind = virtualEdge
		rank = -key - 1
	} else {
		rank = t.rank[key]
	}

	t.nodes[n].setTransition(rank, e)
}

// findTransitionMatching returns the t_k-transition of n, the edge whose
// label starts with the symbol at text position k. A missing transition
// is an invariant violation.
func (t *Tree[S]) findTransitionMatching(n NodeID, k int) (edge, error) {
	if k < 1 || k > t.size {
		return edge{}, fmt.Errorf("%w: node %d, position %d out of text", ErrNoTransition, n, k)
	}

	if e, ok := t.nodes[n].transition(t.rank[k]); ok {
		return e, nil
	}

	return edge{}, fmt.Errorf("%w: node %d, symbol %s at position %d",
		ErrNoTransition, n, symString(t.text[k]), k)
}

// findTransitionFor returns the transition of n starting with sym.
// Absence is a normal result.
func (t *Tree[S]) findTransitionFor(n NodeID, sym S) (edge, bool) {
	rank, ok := t.ranks[sym]
	if !ok {
		return edge{}, false
	}
	return t.nodes[n].transition(rank)
}

// hasTransitionFor reports whether n has a transition starting with sym.
func (t *Tree[S]) hasTransitionFor(n NodeID, sym S) bool {
	rank, ok := t.ranks[sym]
	return ok && t.nodes[n].hasTransition(rank)
}

// labelEnd clips the end of an open edge to the text length.
func (t *Tree[S]) labelEnd(e edge) int {
	return min(e.end, t.size)
}
