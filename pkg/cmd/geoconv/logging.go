// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/logtags"
)

// tagHandler adds the log tags of the context to every record.
type tagHandler struct {
	slog.Handler
}

func (h tagHandler) Handle(ctx context.Context, r slog.Record) error {
	if tags := logtags.FromContext(ctx); tags != nil {
		for _, t := range tags.Get() {
			r.AddAttrs(slog.String(t.Key(), t.ValueStr()))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h tagHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tagHandler{h.Handler.WithAttrs(attrs)}
}

func (h tagHandler) WithGroup(name string) slog.Handler {
	return tagHandler{h.Handler.WithGroup(name)}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tagHandler{slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})})
}
