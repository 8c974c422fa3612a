package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
)

// Catalog errors.
var (
	// ErrDuplicateName is returned when a component name is added twice
	// within its kind.
	ErrDuplicateName = errors.New("duplicate component name")
)

// Catalog is a validating component registry. Wirings are parsed when
// added and rejected early, and every listing preserves insertion order.
// It implements enigma.Catalog.
type Catalog struct {
	mu sync.RWMutex

	rotors     map[string]enigma.RotorSpec
	rotorNames []string

	reflectors     map[string]string
	reflectorNames []string

	entryWheels     map[string]string
	entryWheelNames []string
}

var _ enigma.Catalog = (*Catalog)(nil)

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		rotors:      make(map[string]enigma.RotorSpec),
		reflectors:  make(map[string]string),
		entryWheels: make(map[string]string),
	}
}

// AddRotor registers a rotor wiring under name. The alphabet must be a
// permutation of the 26 letters and every notch a Latin letter.
func (c *Catalog) AddRotor(name string, spec enigma.RotorSpec) error {
	// Building a throwaway rotor runs the full wiring and notch checks.
	if _, err := enigma.NewRotor(name, spec.Alphabet, spec.Notches, 'A'); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rotors[name]; ok {
		return fmt.Errorf("rotor %q: %w", name, ErrDuplicateName)
	}
	c.rotors[name] = spec
	c.rotorNames = append(c.rotorNames, name)
	return nil
}

// AddReflector registers a reflector wiring under name. The wiring must
// be an involution.
func (c *Catalog) AddReflector(name, alphabet string) error {
	if _, err := enigma.NewReflector(name, alphabet); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.reflectors[name]; ok {
		return fmt.Errorf("reflector %q: %w", name, ErrDuplicateName)
	}
	c.reflectors[name] = alphabet
	c.reflectorNames = append(c.reflectorNames, name)
	return nil
}

// AddEntryWheel registers an entry wheel wiring under name.
func (c *Catalog) AddEntryWheel(name, alphabet string) error {
	if _, err := enigma.NewStator(name, alphabet); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entryWheels[name]; ok {
		return fmt.Errorf("entry wheel %q: %w", name, ErrDuplicateName)
	}
	c.entryWheels[name] = alphabet
	c.entryWheelNames = append(c.entryWheelNames, name)
	return nil
}

// Rotor returns the spec registered under name.
func (c *Catalog) Rotor(name string) (enigma.RotorSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.rotors[name]
	return spec, ok
}

// Reflector returns the wiring alphabet registered under name.
func (c *Catalog) Reflector(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	alphabet, ok := c.reflectors[name]
	return alphabet, ok
}

// EntryWheel returns the wiring alphabet registered under name.
func (c *Catalog) EntryWheel(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	alphabet, ok := c.entryWheels[name]
	return alphabet, ok
}

// Rotors lists rotor names in insertion order.
func (c *Catalog) Rotors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.rotorNames...)
}

// Reflectors lists reflector names in insertion order.
func (c *Catalog) Reflectors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.reflectorNames...)
}

// EntryWheels lists entry wheel names in insertion order.
func (c *Catalog) EntryWheels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.entryWheelNames...)
}
