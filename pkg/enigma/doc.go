// Package enigma implements a rotor cipher machine: the signal path,
// the rotor-stepping mechanism, and the machine assembly.
//
// # Machine Structure
//
// A Machine composes four kinds of component:
//
//	Machine
//	├── entry wheel (Stator, optional)
//	├── RotorBank
//	│   ├── Rotor (leftmost, slowest)
//	│   ├── ...
//	│   └── Rotor (rightmost, fastest)
//	├── reflector (Stator, optional)
//	└── Plugboard
//
// Components are installed by name from a Catalog supplied at
// construction. Whether a machine requires a reflector or an entry wheel
// is decided once, at construction: each is required exactly when its
// catalog carries at least one entry.
//
// # Signal Path
//
// Encoding one letter runs, in order: the stepping transition, then
//
//	plugboard → entry wheel → rotors (right to left) → reflector
//	          → rotors (left to right) → entry wheel → plugboard
//
// Entry wheel and reflector are skipped when absent. Because the
// reflector is an involution and every other stage is undone on the way
// back, encoding is self-inverse: running the ciphertext through a
// machine with the same starting configuration yields the plaintext.
//
// # Stepping
//
// Rotors advance before the electrical contact closes. The rightmost
// rotor steps on every keypress; a rotor stepping across one of its
// notch positions advances its left neighbour; and a middle rotor
// resting on its own notch advances itself and its left neighbour in the
// same keypress - the double-stepping anomaly. See RotorBank.Step.
//
// # Input Handling
//
// Input is case-insensitive and output is uppercase. Characters outside
// the Latin alphabet are passed through untouched, or dropped entirely
// when the output is regrouped into five-letter blocks.
package enigma
