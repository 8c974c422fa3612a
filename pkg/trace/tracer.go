package trace

// Tracer is the interface applications implement to receive machine events.
// Pass nil or NoopTracer to a machine to disable tracing.
type Tracer interface {
	// Trace records an event. Implementations must be safe for concurrent
	// use; a machine calls Trace synchronously from its encode loop, so
	// implementations should return quickly.
	Trace(event Event)
}

// NoopTracer discards all events. Use when tracing is disabled.
// NoopTracer is safe for concurrent use and usable as a zero value.
type NoopTracer struct{}

// Trace discards the event.
func (NoopTracer) Trace(Event) {}

// Compile-time interface satisfaction check.
var _ Tracer = NoopTracer{}
