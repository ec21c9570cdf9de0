// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// Settings is the toml configuration of stree, command line flags
// override single values.
type Settings struct {
	Text       string        `toml:"text"`
	TextFile   string        `toml:"text-file"`
	Alphabet   string        `toml:"alphabet"`
	Terminator string        `toml:"terminator"`
	Dump       bool          `toml:"dump"`
	Query      QuerySettings `toml:"query"`
	Log        LogSettings   `toml:"log"`
}

type QuerySettings struct {
	Mode      string `toml:"mode"`       // substring, suffix or both
	Workers   int    `toml:"workers"`    // 0 is GOMAXPROCS
	CacheSize int    `toml:"cache-size"` // 0 disables the cache
}

type LogSettings struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"` // console or json
}

func defaultSettings() Settings {
	return Settings{
		Terminator: "\x00",
		Query: QuerySettings{
			Mode:      "substring",
			CacheSize: 1024,
		},
		Log: LogSettings{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// loadSettings returns the defaults overlaid with the config file.
// Unknown keys in the file are an error.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("%s is not a valid toml config file: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return s, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return s, nil
}

func (s Settings) validate() error {
	if s.Text != "" && s.TextFile != "" {
		return errors.New("text and text-file are mutually exclusive")
	}
	if utf8.RuneCountInString(s.Terminator) != 1 {
		return fmt.Errorf("terminator must be a single symbol, got %q", s.Terminator)
	}
	if _, err := parseMode(s.Query.Mode); err != nil {
		return err
	}
	if s.Query.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Query.Workers)
	}
	if s.Query.CacheSize < 0 {
		return fmt.Errorf("cache-size must not be negative, got %d", s.Query.CacheSize)
	}
	if _, err := s.Log.LogLevel(); err != nil {
		return err
	}
	if s.Log.Encoding != "console" && s.Log.Encoding != "json" {
		return fmt.Errorf("invalid log encoding: %q", s.Log.Encoding)
	}
	return nil
}

// terminator returns the configured terminator symbol.
func (s Settings) terminator() rune {
	r, _ := utf8.DecodeRuneInString(s.Terminator)
	return r
}

// loadText returns the text to index, trailing line breaks of
// a text file are removed.
func (s Settings) loadText() (string, error) {
	if s.TextFile == "" {
		return s.Text, nil
	}

	buf, err := os.ReadFile(s.TextFile)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

func (ls LogSettings) LogLevel() (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(ls.Level)); err != nil {
		return l, fmt.Errorf("invalid log level: %q", ls.Level)
	}
	return l, nil
}

// distinctSymbols returns the symbols of text in order of first appearance.
func distinctSymbols(text string) string {
	seen := make(map[rune]bool)

	var sb strings.Builder
	for _, r := range text {
		if !seen[r] {
			seen[r] = true
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
