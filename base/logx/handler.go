// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a [slog.Handler] whose output is gated on [UserLevel]
// and colored with [LevelColor] when the terminal supports it.
type Handler struct {
	mu     sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// SetDefaultLogger sets the default logger to a [Handler]
// writing to [os.Stderr]. It is called automatically at startup,
// and should be called again after any changes to the terminal
// state of the program.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func init() {
	SetDefaultLogger()
}

// Enabled reports whether the given level is at or above [UserLevel].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// Handle writes the given record as one line of the form
// "level: message key=value ...".
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	b := &strings.Builder{}
	b.WriteString(LevelColor(r.Level, strings.ToLower(r.Level.String())))
	b.WriteString(": ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		appendAttr(b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(b, h.qualify(a))
		return true
	})
	b.WriteByte('\n')
	_, err := h.w.Write([]byte(b.String()))
	return err
}

// qualify prefixes the attr key with the open group names.
func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) > 0 && a.Key != "" {
		a.Key = strings.Join(h.groups, ".") + "." + a.Key
	}
	return a
}

func appendAttr(b *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", DebugColor(a.Key), a.Value)
}

// WithAttrs returns a new [Handler] that includes the given attrs
// in every record. The attrs are qualified with any group names
// that are open at the time they are added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, groups: h.groups}
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.qualify(a))
	}
	return nh
}

// WithGroup returns a new [Handler] that qualifies all attr keys
// with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{w: h.w, attrs: h.attrs}
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}
