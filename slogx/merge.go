// Package slogx has [log/slog] handlers used to route assertion diagnostics.
package slogx

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = (*handlerJoiner)(nil)

type handlerJoiner struct {
	a, b slog.Handler
}

func (h *handlerJoiner) Enabled(ctx context.Context, level slog.Level) bool {
	return h.a.Enabled(ctx, level) || h.b.Enabled(ctx, level)
}

// Handle passes the record to each handler that's enabled for its level.
func (h *handlerJoiner) Handle(ctx context.Context, record slog.Record) error {
	var aerr, berr error
	if h.a.Enabled(ctx, record.Level) {
		aerr = h.a.Handle(ctx, record.Clone())
	}
	if h.b.Enabled(ctx, record.Level) {
		berr = h.b.Handle(ctx, record.Clone())
	}
	return errors.Join(aerr, berr)
}

func (h *handlerJoiner) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handlerJoiner{h.a.WithAttrs(attrs), h.b.WithAttrs(attrs)}
}

func (h *handlerJoiner) WithGroup(name string) slog.Handler {
	return &handlerJoiner{h.a.WithGroup(name), h.b.WithGroup(name)}
}

// MergeHandlers will merge many [slog.Handler] into one for a single interface for both.
func MergeHandlers(a, b slog.Handler, others ...slog.Handler) slog.Handler {
	joined := &handlerJoiner{a, b}
	if len(others) > 0 {
		return MergeHandlers(joined, others[0], others[1:]...)
	}
	return joined
}
