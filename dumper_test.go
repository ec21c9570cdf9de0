// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ukkonen

import (
	"strings"
	"testing"
)

type dumpTest struct {
	text     string
	alphabet string
	want     string
}

func TestDumperUnbuilt(t *testing.T) {
	t.Parallel()

	tree, err := NewString("cacao", "aco", '#')
	if err != nil {
		t.Fatal(err)
	}

	w := new(strings.Builder)
	tree.Dump(w)
	if got := w.String(); got != "" {
		t.Errorf("Dump before Build, got:\n%s", got)
	}
}

func TestDumperEmptyText(t *testing.T) {
	t.Parallel()
	checkDump(t, dumpTest{
		text:     "",
		alphabet: "aco",
		want: `
### size(0), inner(0), leaves(0), implicit(0)
[ROOT] id: 1 depth: 0 link: 0
`,
	})
}

func TestDumperCA(t *testing.T) {
	t.Parallel()
	checkDump(t, dumpTest{
		text:     "ca",
		alphabet: "aco",
		want: `
### size(2), inner(0), leaves(2), implicit(0)
[ROOT] id: 1 depth: 0 link: 0
[2,∞] "a" leaf
[1,∞] "ca" leaf
`,
	})
}

func TestDumperCAC(t *testing.T) {
	t.Parallel()
	checkDump(t, dumpTest{
		text:     "cac",
		alphabet: "aco",
		want: `
### size(3), inner(0), leaves(2), implicit(1)
[ROOT] id: 1 depth: 0 link: 0
[2,∞] "ac" leaf
[1,∞] "cac" leaf
`,
	})
}

func TestDumperCacao(t *testing.T) {
	t.Parallel()
	checkDump(t, dumpTest{
		text:     "cacao",
		alphabet: "aco",
		want: `
### size(5), inner(2), leaves(5), implicit(0)
[ROOT] id: 1 depth: 0 link: 0
[2,2] "a" -> 3
.[INNER] id: 3 depth: 1 link: 1
.[3,∞] "cao" leaf
.[5,∞] "o" leaf
[1,2] "ca" -> 2
.[INNER] id: 2 depth: 2 link: 3
.[3,∞] "cao" leaf
.[5,∞] "o" leaf
[5,∞] "o" leaf
`,
	})
}

func TestDumperBytes(t *testing.T) {
	t.Parallel()

	tree, err := New([]byte("AT"), []byte("ACGT"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Build(); err != nil {
		t.Fatal(err)
	}

	want := `
### size(2), inner(0), leaves(2), implicit(0)
[ROOT] id: 1 depth: 0 link: 0
[1,∞] "AT" leaf
[2,∞] "T" leaf
`
	if got := tree.String(); got != want {
		t.Errorf("String got:\n%swant:\n%s", got, want)
	}
}

func checkDump(t *testing.T, tt dumpTest) {
	t.Helper()
	tree := mustBuild(t, tt.text, tt.alphabet)

	w := new(strings.Builder)
	tree.Dump(w)
	got := w.String()
	if tt.want != got {
		t.Errorf("Dump got:\n%swant:\n%s", got, tt.want)
	}

	if s := tree.String(); s != got {
		t.Errorf("String differs from Dump:\n%s", s)
	}
}
