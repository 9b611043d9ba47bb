// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostic zap logger. Progress output for
// users does not go through it.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a zap logger writing to stderr. When debug is true it
// uses the development config (human-readable, debug level); otherwise the
// production config (JSON) at warn level, so a normal run stays quiet.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}
