// Package logger builds the slog loggers used by the parse pipeline.
package logger

import (
	"io"
	"log/slog"

	"github.com/joshuapare/gedkit/pkg/types"
)

// Discard drops all output. It is used whenever the caller supplies no logger.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures New.
type Options struct {
	Writer io.Writer  // destination; nil discards all output
	Level  slog.Level // minimum level, LevelInfo by default
	JSON   bool       // JSON lines instead of logfmt text
}

// New returns a logger writing to opts.Writer.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		return Discard
	}
	h := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(opts.Writer, h))
	}
	return slog.New(slog.NewTextHandler(opts.Writer, h))
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard
	}
	return l
}

// Warning logs w at Warn level with its position as attributes.
func Warning(l *slog.Logger, w types.Warning) {
	attrs := make([]any, 0, 8)
	attrs = append(attrs, slog.String("kind", w.Kind.String()))
	if w.Line > 0 {
		attrs = append(attrs, slog.Int("line", w.Line))
	}
	if w.Offset > 0 {
		attrs = append(attrs, slog.Int("offset", w.Offset))
	}
	if w.Tag != "" {
		attrs = append(attrs, slog.String("tag", w.Tag))
	}
	if w.XRef != "" {
		attrs = append(attrs, slog.String("xref", w.XRef))
	}
	l.Warn(w.Msg, attrs...)
}
