package enigma

import "errors"

// Machine errors.
var (
	// ErrInvalidWiring is returned when a wiring alphabet is not a
	// permutation of the 26 uppercase Latin letters.
	ErrInvalidWiring = errors.New("invalid wiring")

	// ErrInvalidReflector is returned when a reflector wiring is not an
	// involution, i.e. mapping any letter twice does not return it.
	ErrInvalidReflector = errors.New("reflector wiring is not an involution")

	// ErrInvalidPosition is returned when a rotor position is not a
	// Latin letter, or a position string does not match the rotor count.
	ErrInvalidPosition = errors.New("invalid rotor position")

	// ErrUnknownRotor is returned when a rotor name is not in the catalog.
	ErrUnknownRotor = errors.New("unknown rotor")

	// ErrUnknownReflector is returned when a reflector name is not in the
	// catalog.
	ErrUnknownReflector = errors.New("unknown reflector")

	// ErrUnknownEntryWheel is returned when an entry wheel name is not in
	// the catalog.
	ErrUnknownEntryWheel = errors.New("unknown entry wheel")

	// ErrTooManyRotors is returned when adding a rotor would exceed the
	// machine's rotor limit.
	ErrTooManyRotors = errors.New("too many rotors")

	// ErrTooManyPlugs is returned when more than MaxPlugPairs plugboard
	// pairs are configured at once.
	ErrTooManyPlugs = errors.New("too many plugboard pairs")

	// ErrInvalidPlug is returned when a plugboard pair is not exactly two
	// distinct Latin letters.
	ErrInvalidPlug = errors.New("invalid plugboard pair")

	// ErrNoRotors is returned by Encode when no rotors are installed.
	ErrNoRotors = errors.New("no rotors installed")

	// ErrNoReflector is returned by Encode when the machine requires a
	// reflector and none is installed.
	ErrNoReflector = errors.New("no reflector installed")

	// ErrNoEntryWheel is returned by Encode when the machine requires an
	// entry wheel and none is installed.
	ErrNoEntryWheel = errors.New("no entry wheel installed")

	// ErrNoCatalog is returned by New when the configuration carries no
	// component catalog.
	ErrNoCatalog = errors.New("no component catalog")
)
