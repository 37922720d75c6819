package slogx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var _ slog.Handler = (*CountingHandler)(nil)

// CountingHandler counts the records at or above a minimum level before passing them on.
// Handlers derived with WithAttrs or WithGroup share the same count.
type CountingHandler struct {
	min   slog.Level
	count *atomic.Int64
	impl  slog.Handler
}

func NewCountingHandler(impl slog.Handler, minLevel slog.Level) *CountingHandler {
	if impl == nil {
		panic("nil implementing handler")
	}
	return &CountingHandler{
		min:   minLevel,
		count: new(atomic.Int64),
		impl:  impl,
	}
}

// Count returns the number of records counted so far.
func (h *CountingHandler) Count() int64 {
	return h.count.Load()
}

func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.min || h.impl.Enabled(ctx, level)
}

func (h *CountingHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.min {
		h.count.Add(1)
	}
	if !h.impl.Enabled(ctx, record.Level) {
		return nil
	}
	return h.impl.Handle(ctx, record)
}

func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CountingHandler{min: h.min, count: h.count, impl: h.impl.WithAttrs(attrs)}
}

func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{min: h.min, count: h.count, impl: h.impl.WithGroup(name)}
}
