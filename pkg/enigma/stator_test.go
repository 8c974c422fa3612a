package enigma

import (
	"errors"
	"testing"
)

const wiringETW = "QWERTZUIOASDFGHJKPYXCVBNML" // keyboard-order entry wheel

func TestNewStator(t *testing.T) {
	s, err := NewStator("ETW-K", wiringETW)
	if err != nil {
		t.Fatalf("NewStator failed: %v", err)
	}

	if s.Model() != "ETW-K" {
		t.Errorf("Model() = %s, want ETW-K", s.Model())
	}

	// Q sits on contact 0 of a keyboard-order entry wheel.
	if got := s.Forward(0); got != 16 {
		t.Errorf("Forward(0) = %d, want 16", got)
	}
	for i := 0; i < alphabetSize; i++ {
		if got := s.Backward(s.Forward(i)); got != i {
			t.Errorf("Backward(Forward(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestNewStatorRejectsBadWiring(t *testing.T) {
	_, err := NewStator("X", "not a wiring")
	if !errors.Is(err, ErrInvalidWiring) {
		t.Errorf("error = %v, want ErrInvalidWiring", err)
	}
}

func TestNewReflector(t *testing.T) {
	r, err := NewReflector("B", wiringB)
	if err != nil {
		t.Fatalf("NewReflector failed: %v", err)
	}

	// An involution maps every letter back in two hops.
	for i := 0; i < alphabetSize; i++ {
		if got := r.Forward(r.Forward(i)); got != i {
			t.Errorf("Forward(Forward(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestNewReflectorRejectsNonInvolution(t *testing.T) {
	// A rotor wiring is a valid permutation but not an involution.
	_, err := NewReflector("X", wiringI)
	if !errors.Is(err, ErrInvalidReflector) {
		t.Errorf("error = %v, want ErrInvalidReflector", err)
	}

	// The entry wheel wiring is not an involution either.
	_, err = NewReflector("X", wiringETW)
	if !errors.Is(err, ErrInvalidReflector) {
		t.Errorf("error = %v, want ErrInvalidReflector", err)
	}
}
