// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/gaissmai/ukkonen"
)

type mode uint8

const (
	modeSubstring mode = iota
	modeSuffix
	modeBoth
)

func parseMode(s string) (mode, error) {
	switch s {
	case "substring":
		return modeSubstring, nil
	case "suffix":
		return modeSuffix, nil
	case "both":
		return modeBoth, nil
	}
	return 0, fmt.Errorf("invalid query mode: %q", s)
}

// answer of a single pattern, only the fields of the mode are set.
type answer struct {
	Pattern   string
	Substring bool
	Suffix    bool
}

// querier answers patterns against a built tree, the tree is read-only
// and shared by all workers.
type querier struct {
	tree *ukkonen.Tree[rune]
	mode mode

	// nil if disabled, safe for concurrent use
	cache *lru.Cache[string, answer]
	hits  atomic.Int64
}

func newQuerier(tree *ukkonen.Tree[rune], m mode, cacheSize int) (*querier, error) {
	q := &querier{tree: tree, mode: m}

	if cacheSize > 0 {
		cache, err := lru.New[string, answer](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create query cache: %w", err)
		}
		q.cache = cache
	}

	return q, nil
}

func (q *querier) query(pattern string) answer {
	if q.cache != nil {
		if a, ok := q.cache.Get(pattern); ok {
			q.hits.Add(1)
			return a
		}
	}

	a := answer{Pattern: pattern}
	runes := []rune(pattern)

	if q.mode != modeSuffix {
		a.Substring = q.tree.ContainsSubstring(runes)
	}
	if q.mode != modeSubstring {
		a.Suffix = q.tree.ContainsSuffix(runes)
	}

	if q.cache != nil {
		q.cache.Add(pattern, a)
	}
	return a
}

// run answers all patterns with at most workers goroutines.
// The answers keep the order of the patterns.
func (q *querier) run(ctx context.Context, patterns []string, workers int) ([]answer, error) {
	answers := make([]answer, len(patterns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range patterns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			answers[i] = q.query(p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to answer queries: %w", err)
	}
	return answers, nil
}

// readPatterns returns one pattern per line, empty lines are skipped.
func readPatterns(r io.Reader) ([]string, error) {
	var patterns []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			patterns = append(patterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read patterns: %w", err)
	}
	return patterns, nil
}

// writeAnswers writes pattern<TAB>result lines, two result
// columns (substring, suffix) in mode both.
func writeAnswers(w io.Writer, answers []answer, m mode) error {
	bw := bufio.NewWriter(w)

	for _, a := range answers {
		bw.WriteString(a.Pattern)
		switch m {
		case modeSubstring:
			bw.WriteString("\t" + strconv.FormatBool(a.Substring))
		case modeSuffix:
			bw.WriteString("\t" + strconv.FormatBool(a.Suffix))
		case modeBoth:
			bw.WriteString("\t" + strconv.FormatBool(a.Substring))
			bw.WriteString("\t" + strconv.FormatBool(a.Suffix))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return nil
}
