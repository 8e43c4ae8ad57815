// Package slogext provides slog helpers.
package slogext

import (
	"context"
	"io"
	"log/slog"

	"github.com/kortschak/goroutine"
)

// GoID is a slog.Handler that adds the calling goroutine's goid.
type GoID struct {
	slog.Handler
}

func (h GoID) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.Int64("goid", goroutine.ID()))
	return h.Handler.Handle(ctx, r)
}

func (h GoID) WithAttrs(attrs []slog.Attr) slog.Handler {
	return GoID{h.Handler.WithAttrs(attrs)}
}

func (h GoID) WithGroup(name string) slog.Handler {
	return GoID{h.Handler.WithGroup(name)}
}

// HandlerOptions configure New.
type HandlerOptions struct {
	// Level reports the minimum record level that will be logged.
	Level slog.Leveler
	// AddSource adds source positions to records.
	AddSource bool
	// JSON selects line-delimited JSON output instead of text.
	JSON bool
}

// New returns a GoID handler wrapping a text or JSON handler writing to w.
func New(w io.Writer, opts HandlerOptions) slog.Handler {
	o := &slog.HandlerOptions{Level: opts.Level, AddSource: opts.AddSource}
	if opts.JSON {
		return GoID{slog.NewJSONHandler(w, o)}
	}
	return GoID{slog.NewTextHandler(w, o)}
}
