// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"io"
)

// command line options override some fields of the settings
type cmdOptions struct {
	// [-c] configuration file path
	ConfigFilePath string

	Text       string
	TextFile   string
	Alphabet   string
	Terminator string
	Mode       string
	Workers    int
	CacheSize  int
	LogLevel   string
	Dump       bool

	// remaining arguments, the query patterns
	Patterns []string

	// names of the flags given on the command line
	set map[string]bool
}

func parseCommandLineOptions(args []string, stderr io.Writer) (*cmdOptions, error) {
	clopts := &cmdOptions{set: make(map[string]bool)}

	fs := flag.NewFlagSet("stree", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&clopts.ConfigFilePath, "c", "", "[c]onfig file path, toml")
	fs.StringVar(&clopts.Text, "t", "", "[t]ext to index")
	fs.StringVar(&clopts.TextFile, "f", "", "text [f]ile to index")
	fs.StringVar(&clopts.Alphabet, "a", "", "[a]lphabet, derived from the text if empty")
	fs.StringVar(&clopts.Terminator, "term", "", "terminator symbol, not in text or alphabet")
	fs.StringVar(&clopts.Mode, "m", "", "query [m]ode: substring, suffix or both")
	fs.IntVar(&clopts.Workers, "w", 0, "query [w]orkers, 0 is GOMAXPROCS")
	fs.IntVar(&clopts.CacheSize, "cache", 0, "query cache size, 0 disables the cache")
	fs.StringVar(&clopts.LogLevel, "l", "", "[l]og level")
	fs.BoolVar(&clopts.Dump, "d", false, "[d]ump the tree")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) { clopts.set[f.Name] = true })
	clopts.Patterns = fs.Args()

	return clopts, nil
}

// apply overwrites the settings with the flags given on the command line.
func (o *cmdOptions) apply(s *Settings) {
	if o.set["t"] {
		s.Text, s.TextFile = o.Text, ""
	}
	if o.set["f"] {
		s.TextFile, s.Text = o.TextFile, ""
	}
	if o.set["a"] {
		s.Alphabet = o.Alphabet
	}
	if o.set["term"] {
		s.Terminator = o.Terminator
	}
	if o.set["m"] {
		s.Query.Mode = o.Mode
	}
	if o.set["w"] {
		s.Query.Workers = o.Workers
	}
	if o.set["cache"] {
		s.Query.CacheSize = o.CacheSize
	}
	if o.set["l"] {
		s.Log.Level = o.LogLevel
	}
	if o.set["d"] {
		s.Dump = o.Dump
	}
}
