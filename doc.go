// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ukkonen builds suffix trees with Ukkonen's online
// linear-time construction and answers substring and suffix
// membership queries on them.
//
// The text and the alphabet are fixed before construction starts:
//
//	t, err := ukkonen.NewString("abaaba$", "$ab", '#')
//	if err != nil { ... }
//	if err := t.Build(); err != nil { ... }
//
//	t.ContainsSubstring([]rune("aba")) // true
//	t.ContainsSuffix([]rune("baaba"))  // true
//
// Construction maintains the implicit suffix tree for every prefix
// of the text via suffix links, the canonical active point and the
// skip/count trick. An auxiliary bottom node with one transition per
// alphabet symbol to root seeds the suffix links, so the first symbol
// of a new suffix always finds a transition.
//
// Nodes live in an arena and are addressed by [NodeID]. The outgoing
// transitions of a node are stored in a popcount-compressed sparse
// array indexed by the alphabet rank of the first label symbol.
// Larger alphabets keep the transitions for ranks from 256 on in a
// per-node map, so the alphabet size is not limited.
//
// A tree is built once and never modified afterwards, there is no
// insertion, deletion or serialization. After [Tree.Build] returns,
// the tree is safe for concurrent readers.
package ukkonen
