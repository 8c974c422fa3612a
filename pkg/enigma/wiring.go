package enigma

import "fmt"

// Wiring is a fixed permutation of the 26 alphabet positions, the
// electrical core shared by rotors, reflectors and entry wheels. It is
// built from an alphabet string whose i-th letter names the output
// contact wired to input contact i.
//
// The zero value is not a valid permutation; use NewWiring.
type Wiring struct {
	forward  [alphabetSize]byte
	backward [alphabetSize]byte
}

// NewWiring parses an alphabet string into a Wiring. The string must
// contain each of the 26 Latin letters exactly once; case is ignored.
func NewWiring(alphabet string) (Wiring, error) {
	var w Wiring
	if len(alphabet) != alphabetSize {
		return Wiring{}, fmt.Errorf("%w: want %d letters, got %d", ErrInvalidWiring, alphabetSize, len(alphabet))
	}
	var seen [alphabetSize]bool
	for i := 0; i < alphabetSize; i++ {
		out, ok := letterIndex(alphabet[i])
		if !ok {
			return Wiring{}, fmt.Errorf("%w: %q is not a Latin letter", ErrInvalidWiring, alphabet[i])
		}
		if seen[out] {
			return Wiring{}, fmt.Errorf("%w: duplicate letter %c", ErrInvalidWiring, indexLetter(out))
		}
		seen[out] = true
		w.forward[i] = byte(out)
		w.backward[out] = byte(i)
	}
	return w, nil
}

// Forward maps input contact i to its output contact.
func (w Wiring) Forward(i int) int {
	return int(w.forward[i])
}

// Backward maps output contact i back to its input contact, inverting
// Forward.
func (w Wiring) Backward(i int) int {
	return int(w.backward[i])
}

// Alphabet renders the permutation back as an uppercase alphabet string.
func (w Wiring) Alphabet() string {
	b := make([]byte, alphabetSize)
	for i, out := range w.forward {
		b[i] = indexLetter(int(out))
	}
	return string(b)
}

// IsInvolution reports whether the permutation is its own inverse, the
// property a reflector needs for encoding to be self-inverse.
func (w Wiring) IsInvolution() bool {
	for i := 0; i < alphabetSize; i++ {
		if int(w.forward[w.forward[i]]) != i {
			return false
		}
	}
	return true
}
