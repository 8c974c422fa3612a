package trace

import (
	"context"
	"log/slog"
)

// SlogTracer writes machine events to an slog.Logger.
// Useful for development when you want to watch a machine work in console.
type SlogTracer struct {
	logger *slog.Logger
}

// NewSlogTracer creates a SlogTracer that writes to the given slog.Logger.
func NewSlogTracer(logger *slog.Logger) *SlogTracer {
	return &SlogTracer{logger: logger}
}

// Trace writes the event to the slog logger at Debug level.
func (t *SlogTracer) Trace(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.Uint64("seq", event.Seq),
		slog.String("kind", event.Kind.String()),
	}

	if event.Machine != "" {
		attrs = append(attrs, slog.String("machine", event.Machine))
	}

	switch {
	case event.Keypress != nil:
		attrs = append(attrs,
			slog.String("input", event.Keypress.Input),
			slog.String("output", event.Keypress.Output),
			slog.String("positions", event.Keypress.Positions),
			slog.Int("steps", len(event.Keypress.Steps)),
		)
	case event.Config != nil:
		attrs = append(attrs, slog.String("op", event.Config.Op))
		if event.Config.Detail != "" {
			attrs = append(attrs, slog.String("detail", event.Config.Detail))
		}
	}

	t.logger.LogAttrs(context.Background(), slog.LevelDebug, "enigma", attrs...)
}

// Compile-time interface satisfaction check.
var _ Tracer = (*SlogTracer)(nil)
