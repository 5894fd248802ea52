// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that formats records like [slog.TextHandler]
// and colors each line by level when the output is a terminal.
type Handler struct {
	out  *termenv.Output
	text slog.Handler

	// mu guards buf, which is shared with handlers derived
	// through WithAttrs and WithGroup.
	mu  *sync.Mutex
	buf *bytes.Buffer
}

// NewHandler returns a new [Handler] writing to w with the given options.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	buf := &bytes.Buffer{}
	return &Handler{
		out:  termenv.NewOutput(w),
		text: slog.NewTextHandler(buf, opts),
		mu:   &sync.Mutex{},
		buf:  buf,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	st := h.out.String(strings.TrimSuffix(h.buf.String(), "\n"))
	if c := LevelColor(r.Level); c != nil {
		st = st.Foreground(c)
	}
	_, err := fmt.Fprintln(h.out, st)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.text = h.text.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.text = h.text.WithGroup(name)
	return &nh
}

// LevelColor returns the terminal color used for records at the given level,
// or nil for the default foreground.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return nil
	default:
		return termenv.ANSIBrightBlack
	}
}
