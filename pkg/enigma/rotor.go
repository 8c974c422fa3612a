package enigma

import "fmt"

// Rotor is a rotating wheel: a Wiring plus a rotational offset and zero
// or more notch positions that drive the stepping of its left neighbour.
//
// The offset shifts the wiring on the way in only. Forward feeds contact
// (i+offset) mod 26 through the wiring; Backward inverts the wiring and
// then subtracts the offset.
type Rotor struct {
	wiring  Wiring
	model   string
	notches uint32 // bit n set: offset n is a notch
	offset  int
	prev    int // offset immediately before the most recent Step
	stepped bool
}

// NewRotor builds a rotor from its wiring alphabet, its notch letters and
// a starting position. Notches and position accept either case.
func NewRotor(model, alphabet, notches string, position byte) (*Rotor, error) {
	w, err := NewWiring(alphabet)
	if err != nil {
		return nil, fmt.Errorf("rotor %q: %w", model, err)
	}
	var mask uint32
	for i := 0; i < len(notches); i++ {
		n, ok := letterIndex(notches[i])
		if !ok {
			return nil, fmt.Errorf("rotor %q: notch %q: %w", model, notches[i], ErrInvalidPosition)
		}
		mask |= 1 << n
	}
	pos, ok := letterIndex(position)
	if !ok {
		return nil, fmt.Errorf("rotor %q: position %q: %w", model, position, ErrInvalidPosition)
	}
	return &Rotor{wiring: w, model: model, notches: mask, offset: pos, prev: pos}, nil
}

// Forward maps contact i through the rotor towards the reflector.
func (r *Rotor) Forward(i int) int {
	return r.wiring.Forward((i + r.offset) % alphabetSize)
}

// Backward maps contact i through the rotor away from the reflector,
// inverting Forward at the current offset.
func (r *Rotor) Backward(i int) int {
	return mod(r.wiring.Backward(i) - r.offset)
}

// Step advances the rotor n positions, records the offset it left and
// marks the rotor stepped. The stepping transition uses n = 1; the flag
// and the recorded offset feed HitNotch until ResetStepFlag.
func (r *Rotor) Step(n int) {
	r.prev = r.offset
	r.offset = mod(r.offset + n)
	r.stepped = true
}

// ResetStepFlag clears the stepped flag at the start of a keypress.
func (r *Rotor) ResetStepFlag() {
	r.stepped = false
}

// HitNotch reports whether the rotor stepped across a notch: it has
// stepped since the last ResetStepFlag and the offset it left was a
// notch position.
func (r *Rotor) HitNotch() bool {
	return r.stepped && r.notchAt(r.prev)
}

// AtNotch reports whether the rotor rests on a notch without having
// stepped this keypress. At most one of HitNotch and AtNotch is true.
func (r *Rotor) AtNotch() bool {
	return !r.stepped && r.notchAt(r.offset)
}

// Position returns the current position as an uppercase letter.
func (r *Rotor) Position() byte {
	return indexLetter(r.offset)
}

// SetPosition turns the rotor directly to the given letter. Unlike Step
// it never marks the rotor stepped, so it cannot fabricate a notch hit.
func (r *Rotor) SetPosition(position byte) error {
	pos, ok := letterIndex(position)
	if !ok {
		return fmt.Errorf("position %q: %w", position, ErrInvalidPosition)
	}
	r.offset = pos
	return nil
}

// Model returns the catalog name this rotor was built from.
func (r *Rotor) Model() string {
	return r.model
}

// Notches returns the notch letters in alphabetical order.
func (r *Rotor) Notches() string {
	b := make([]byte, 0, 2)
	for n := 0; n < alphabetSize; n++ {
		if r.notchAt(n) {
			b = append(b, indexLetter(n))
		}
	}
	return string(b)
}

func (r *Rotor) notchAt(offset int) bool {
	return r.notches&(1<<offset) != 0
}
