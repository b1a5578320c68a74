package testhelper

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewLogger returns a slog text logger that writes each record through tb.Log,
// so output stays attached to the test that produced it.
func NewLogger(tb testing.TB, opts *slog.HandlerOptions) *slog.Logger {
	tb.Helper()

	buf := &bytes.Buffer{}
	return slog.New(&tbHandler{
		inner: slog.NewTextHandler(buf, opts),
		buf:   buf,
		mu:    &sync.Mutex{},
		tb:    tb,
	})
}

// tbHandler shares buf and mu with every handler derived from it.
type tbHandler struct {
	inner slog.Handler
	buf   *bytes.Buffer
	mu    *sync.Mutex
	tb    testing.TB
}

func (h *tbHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *tbHandler) Handle(ctx context.Context, rec slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.inner.Handle(ctx, rec); err != nil {
		return err
	}

	h.tb.Helper()
	h.tb.Log(string(bytes.TrimSuffix(h.buf.Bytes(), []byte("\n"))))
	return nil
}

func (h *tbHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tbHandler{inner: h.inner.WithAttrs(attrs), buf: h.buf, mu: h.mu, tb: h.tb}
}

func (h *tbHandler) WithGroup(name string) slog.Handler {
	return &tbHandler{inner: h.inner.WithGroup(name), buf: h.buf, mu: h.mu, tb: h.tb}
}
