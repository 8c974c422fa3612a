package enigma

// RotorSpec describes one rotor a catalog offers: its wiring alphabet and
// the letters its notches sit at.
type RotorSpec struct {
	Alphabet string
	Notches  string
}

// Catalog supplies the named component wirings a machine may install.
// Implementations must be safe for concurrent readers; a single catalog
// is typically shared by every machine of one model.
//
// The listing methods return names in a stable order. An empty
// Reflectors or EntryWheels listing marks the component as absent from
// the model rather than merely unconfigured: machines built on such a
// catalog encode without it.
type Catalog interface {
	// Rotor returns the spec for the named rotor.
	Rotor(name string) (RotorSpec, bool)

	// Reflector returns the wiring alphabet of the named reflector.
	Reflector(name string) (string, bool)

	// EntryWheel returns the wiring alphabet of the named entry wheel.
	EntryWheel(name string) (string, bool)

	// Rotors lists the available rotor names.
	Rotors() []string

	// Reflectors lists the available reflector names.
	Reflectors() []string

	// EntryWheels lists the available entry wheel names.
	EntryWheels() []string
}
