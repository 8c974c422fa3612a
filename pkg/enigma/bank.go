package enigma

import "fmt"

// StepEvent records one rotor advancing during a stepping transition.
type StepEvent struct {
	Index int    // bank index, 0 is leftmost
	Model string // catalog name of the rotor
	From  byte   // position letter before the step
	To    byte   // position letter after the step
}

// RotorBank holds the installed rotors in machine order: index 0 is the
// leftmost, slowest rotor and the last index is the rightmost, fastest
// rotor next to the entry wheel.
type RotorBank struct {
	rotors []*Rotor
}

// Add installs a rotor at the right end of the bank.
func (b *RotorBank) Add(r *Rotor) {
	b.rotors = append(b.rotors, r)
}

// RemoveAll uninstalls every rotor.
func (b *RotorBank) RemoveAll() {
	b.rotors = nil
}

// Len returns the number of installed rotors.
func (b *RotorBank) Len() int {
	return len(b.rotors)
}

// Models returns the catalog names of the installed rotors, leftmost
// first.
func (b *RotorBank) Models() []string {
	out := make([]string, len(b.rotors))
	for i, r := range b.rotors {
		out[i] = r.Model()
	}
	return out
}

// Positions returns the position letters of the installed rotors,
// leftmost first.
func (b *RotorBank) Positions() string {
	out := make([]byte, len(b.rotors))
	for i, r := range b.rotors {
		out[i] = r.Position()
	}
	return string(out)
}

// SetPositions turns every rotor at once, leftmost first. The string
// must carry exactly one Latin letter per installed rotor. Validation
// happens before any rotor moves, so on error no position changes.
func (b *RotorBank) SetPositions(positions string) error {
	if len(positions) != len(b.rotors) {
		return fmt.Errorf("%w: want %d position letters, got %d", ErrInvalidPosition, len(b.rotors), len(positions))
	}
	offsets := make([]int, len(positions))
	for i := 0; i < len(positions); i++ {
		pos, ok := letterIndex(positions[i])
		if !ok {
			return fmt.Errorf("position %q: %w", positions[i], ErrInvalidPosition)
		}
		offsets[i] = pos
	}
	for i, r := range b.rotors {
		// Direct turn, not a Step: setting positions must not arm
		// notch propagation.
		r.offset = offsets[i]
	}
	return nil
}

// Step runs one keypress stepping transition and reports every rotor
// that moved, in the order they moved.
//
// The rightmost rotor advances on every keypress. Then, scanning right
// to left, a rotor that just stepped across one of its notches advances
// its left neighbour, and a rotor resting on a notch without having
// stepped - possible only for rotors other than the rightmost - advances
// both itself and its left neighbour. The second rule is the
// double-stepping anomaly: the pawl of the left neighbour engages the
// notch ring of the rotor below it and drags both forward.
func (b *RotorBank) Step() []StepEvent {
	if len(b.rotors) == 0 {
		return nil
	}
	var events []StepEvent
	step := func(i int) {
		r := b.rotors[i]
		from := r.Position()
		r.Step(1)
		events = append(events, StepEvent{Index: i, Model: r.Model(), From: from, To: r.Position()})
	}

	for _, r := range b.rotors {
		r.ResetStepFlag()
	}
	last := len(b.rotors) - 1
	step(last)
	for x := last; x > 0; x-- {
		switch {
		case b.rotors[x].HitNotch():
			step(x - 1)
		case b.rotors[x].AtNotch() && x != last:
			step(x)
			step(x - 1)
		}
	}
	return events
}

// Forward maps contact i through every rotor towards the reflector,
// rightmost rotor first.
func (b *RotorBank) Forward(i int) int {
	for x := len(b.rotors) - 1; x >= 0; x-- {
		i = b.rotors[x].Forward(i)
	}
	return i
}

// Backward maps contact i back through every rotor away from the
// reflector, leftmost rotor first.
func (b *RotorBank) Backward(i int) int {
	for _, r := range b.rotors {
		i = r.Backward(i)
	}
	return i
}
