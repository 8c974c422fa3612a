package trace

import (
	"time"
)

// Event represents one traced machine event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the machine instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Seq is the event's position within the session, starting at 1.
	Seq uint64 `cbor:"3,keyasint"`

	// Kind classifies the event type.
	Kind Kind `cbor:"4,keyasint"`

	// Machine is the machine's display name (e.g. "M3").
	Machine string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (exactly one is set).
	Keypress *KeypressEvent `cbor:"6,keyasint,omitempty"` // one letter traversed
	Config   *ConfigEvent   `cbor:"7,keyasint,omitempty"` // configuration changed
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindKeypress indicates a letter traversed the machine.
	KindKeypress Kind = 0
	// KindConfig indicates a configuration change.
	KindConfig Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeypress:
		return "KEYPRESS"
	case KindConfig:
		return "CONFIG"
	default:
		return "UNKNOWN"
	}
}

// KeypressEvent captures a single letter's trip through the machine.
type KeypressEvent struct {
	// Input is the plaintext letter (uppercase).
	Input string `cbor:"1,keyasint"`

	// Output is the resulting ciphertext letter (uppercase).
	Output string `cbor:"2,keyasint"`

	// Positions is the rotor position string the traversal ran against,
	// i.e. after the stepping transition completed.
	Positions string `cbor:"3,keyasint"`

	// Steps lists every rotor advance of the stepping transition, in the
	// order the mechanism applied them.
	Steps []RotorStep `cbor:"4,keyasint,omitempty"`
}

// RotorStep is one rotor advance within a keypress.
type RotorStep struct {
	// Index is the rotor's slot in the bank (0 = leftmost).
	Index int `cbor:"1,keyasint"`

	// Model is the rotor's model name, if it has one.
	Model string `cbor:"2,keyasint,omitempty"`

	// From is the position letter before the advance.
	From string `cbor:"3,keyasint"`

	// To is the position letter after the advance.
	To string `cbor:"4,keyasint"`
}

// ConfigEvent captures a successful configuration operation.
type ConfigEvent struct {
	// Op names the operation ("addRotor", "setReflector", ...).
	Op string `cbor:"1,keyasint"`

	// Detail describes the arguments (e.g. "III at A").
	Detail string `cbor:"2,keyasint,omitempty"`
}
