package enigma

import "fmt"

// Stator is a fixed wheel: a Wiring with no offset and no notches. It
// serves as both the entry wheel and the reflector.
type Stator struct {
	wiring Wiring
	model  string
}

// NewStator builds a fixed wheel from a wiring alphabet.
func NewStator(model, alphabet string) (*Stator, error) {
	w, err := NewWiring(alphabet)
	if err != nil {
		return nil, fmt.Errorf("stator %q: %w", model, err)
	}
	return &Stator{wiring: w, model: model}, nil
}

// NewReflector builds a fixed wheel whose wiring must additionally be an
// involution, so that the signal path back out of the machine undoes the
// path in.
func NewReflector(model, alphabet string) (*Stator, error) {
	s, err := NewStator(model, alphabet)
	if err != nil {
		return nil, err
	}
	if !s.wiring.IsInvolution() {
		return nil, fmt.Errorf("reflector %q: %w", model, ErrInvalidReflector)
	}
	return s, nil
}

// Forward maps contact i through the wheel towards the reflector.
func (s *Stator) Forward(i int) int {
	return s.wiring.Forward(i)
}

// Backward maps contact i through the wheel away from the reflector.
func (s *Stator) Backward(i int) int {
	return s.wiring.Backward(i)
}

// Model returns the catalog name this wheel was built from.
func (s *Stator) Model() string {
	return s.model
}
