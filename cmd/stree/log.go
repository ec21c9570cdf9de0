// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// newLogger returns a sugared logger writing to stderr, stdout
// is reserved for the answers and the dump.
func newLogger(ls LogSettings) (*zap.SugaredLogger, error) {
	level, err := ls.LogLevel()
	if err != nil {
		return nil, err
	}
	zapLevel.SetLevel(level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if ls.Encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cfg := zap.Config{
		Level:            zapLevel,
		Encoding:         ls.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Sugar(), nil
}
