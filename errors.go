// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import "errors"

// Configuration errors, reported by [New] before any construction starts.
var (
	ErrEmptyAlphabet        = errors.New("ukkonen: empty alphabet")
	ErrTerminatorInAlphabet = errors.New("ukkonen: terminator is part of the alphabet")
	ErrTerminatorInText     = errors.New("ukkonen: terminator is part of the text")
	ErrSymbolNotInAlphabet  = errors.New("ukkonen: text symbol is not in the alphabet")
)

// ErrNoTransition signals a broken invariant during construction:
// the canonical reference pair points to a transition that does not exist.
var ErrNoTransition = errors.New("ukkonen: no such transition")
