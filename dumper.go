// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// String returns the dump of the tree, see [Tree.Dump].
func (t *Tree[S]) String() string {
	w := new(strings.Builder)
	t.Dump(w)

	return w.String()
}

// Dump writes the node graph below root to w, one line per node and
// per transition. The format is for humans and may change.
func (t *Tree[S]) Dump(w io.Writer) {
	if !t.isBuilt() {
		return
	}

	s := t.Stats()
	fmt.Fprintf(w, "\n### size(%d), inner(%d), leaves(%d), implicit(%d)\n",
		s.Size, s.Inner, s.Leaves, s.Implicit)

	t.dumpRec(w, root, 0)
}

// dumpRec, rec-descent the tree.
func (t *Tree[S]) dumpRec(w io.Writer, n NodeID, depth int) {
	indent := strings.Repeat(".", depth)
	nd := &t.nodes[n]

	kind := "INNER"
	if n == root {
		kind = "ROOT"
	}

	fmt.Fprintf(w, "%s[%s] id: %d depth: %d link: %d\n", indent, kind, n, nd.depth, nd.link)

	for _, e := range nd.transitions() {
		fmt.Fprintf(w, "%s%s %q", indent, t.boundsFmt(e), t.label(e))

		if e.child == noNode {
			fmt.Fprintln(w, " leaf")
			continue
		}

		fmt.Fprintf(w, " -> %d\n", e.child)
		t.dumpRec(w, e.child, depth+1)
	}
}

// boundsFmt, [key,end] with ∞ for open edges.
func (t *Tree[S]) boundsFmt(e edge) string {
	end := "∞"
	if e.end != open {
		end = strconv.Itoa(e.end)
	}
	return "[" + strconv.Itoa(e.key) + "," + end + "]"
}

// label returns the edge label, clipped to the text.
func (t *Tree[S]) label(e edge) string {
	var sb strings.Builder
	for _, sym := range t.text[e.key : t.labelEnd(e)+1] {
		sb.WriteString(symString(sym))
	}
	return sb.String()
}
