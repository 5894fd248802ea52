// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	l := slog.New(NewHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l.Debug("hidden")
	l.With("size", "800x600").Warn("render target resize failed")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "size=800x600")
	// not a terminal, so no escape sequences
	assert.NotContains(t, out, "\x1b[")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, termenv.ANSIRed, LevelColor(slog.LevelError))
	assert.Equal(t, termenv.ANSIYellow, LevelColor(slog.LevelWarn))
	assert.Nil(t, LevelColor(slog.LevelInfo))
	assert.Equal(t, termenv.ANSIBrightBlack, LevelColor(slog.LevelDebug))
}

func TestDefaultLogger(t *testing.T) {
	prev := slog.Default()
	prevLevel := UserLevel
	defer func() {
		slog.SetDefault(prev)
		UserLevel = prevLevel
	}()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
