// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command stree indexes a text in a suffix tree and answers
// substring and suffix queries for patterns given as arguments
// or line by line on stdin.
//
//	stree -t 'mississippi$' -m both ssi ppi$ ipp
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/gaissmai/ukkonen"
)

func main() {
	if err := _main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func _main() error {
	clopts, err := parseCommandLineOptions(os.Args[1:], os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to parse command line options: %w", err)
	}

	settings, err := loadSettings(clopts.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	clopts.apply(&settings)

	if err = settings.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(settings.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	undo, err := maxprocs.Set(maxprocs.Logger(log.Debugf))
	if err != nil {
		log.Warnf("failed to set GOMAXPROCS: %v", err)
	}
	defer undo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, settings, clopts.Patterns, os.Stdin, os.Stdout, log)
}

// run builds the tree once and answers the patterns, read from stdin
// if none are given.
func run(ctx context.Context, s Settings, patterns []string, stdin io.Reader, stdout io.Writer, log *zap.SugaredLogger) error {
	text, err := s.loadText()
	if err != nil {
		return err
	}

	alphabet := s.Alphabet
	if alphabet == "" {
		alphabet = distinctSymbols(text)
		log.Debugf("alphabet derived from text: %q", alphabet)
	}

	tree, err := ukkonen.NewString(text, alphabet, s.terminator())
	if err != nil {
		return fmt.Errorf("failed to configure tree: %w", err)
	}

	start := time.Now()
	if err = tree.Build(); err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	st := tree.Stats()
	log.Infow("tree built",
		"text", humanize.Bytes(uint64(len(text))),
		"symbols", humanize.Comma(int64(st.Size)),
		"inner", humanize.Comma(int64(st.Inner)),
		"leaves", humanize.Comma(int64(st.Leaves)),
		"edges", humanize.Comma(int64(st.Edges)),
		"implicit", st.Implicit,
		"took", time.Since(start))

	if s.Dump {
		tree.Dump(stdout)
	}

	if len(patterns) == 0 && stdin != nil {
		if patterns, err = readPatterns(stdin); err != nil {
			return err
		}
	}

	m, err := parseMode(s.Query.Mode)
	if err != nil {
		return err
	}

	q, err := newQuerier(tree, m, s.Query.CacheSize)
	if err != nil {
		return err
	}

	workers := s.Query.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	answers, err := q.run(ctx, patterns, workers)
	if err != nil {
		return err
	}

	log.Infow("queries answered",
		"patterns", humanize.Comma(int64(len(patterns))),
		"workers", workers,
		"cacheHits", q.hits.Load())

	return writeAnswers(stdout, answers, m)
}
