// Package trace provides structured keypress tracing for enigma machines.
//
// This package defines the Tracer interface and Event types for capturing
// what a machine does on every encoded letter: which rotors advanced, the
// positions the traversal ran against, and the input/output pair. It is
// separate from operational logging (slog) - a trace is a complete
// machine-readable record of a cipher session, suitable for replay,
// debugging a rotor configuration, or teaching.
//
// # Basic Usage
//
// Machines emit events through a Tracer supplied at construction:
//
//	// For development: log to console via slog
//	cfg.Tracer = trace.NewSlogTracer(slog.Default())
//
//	// For analysis: write to binary file
//	cfg.Tracer, _ = trace.NewFileTracer("session.elog")
//
//	// Both: use MultiTracer
//	cfg.Tracer = trace.NewMultiTracer(
//	    trace.NewSlogTracer(slog.Default()),
//	    fileTracer,
//	)
//
// # Event Kinds
//
// Two kinds of event exist:
//   - Keypress: one letter traversed the machine (KeypressEvent)
//   - Config: the machine configuration changed (ConfigEvent)
//
// Every event carries the machine's session ID (one UUID per machine
// lifetime) and a per-session sequence number, so interleaved traces from
// concurrent machines can be separated again.
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys, by
// convention using the .elog extension. The enigma CLI reads them back
// with "enigma trace view" and "enigma trace stats".
package trace
