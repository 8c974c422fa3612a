package enigma

import "fmt"

// MaxPlugPairs is the number of cables shipped with a plugboard.
const MaxPlugPairs = 10

// Plugboard swaps letter pairs before the first wheel and after the last.
// The zero value is an empty board that swaps nothing.
type Plugboard struct {
	pairs [][2]byte
}

// Configure replaces the plugboard cabling. Each pair must be exactly two
// distinct Latin letters, case-insensitive, and at most MaxPlugPairs
// pairs fit on the board. On error the previous cabling is kept.
//
// A letter may appear in more than one pair; Swap resolves it to the
// earliest pair listed.
func (p *Plugboard) Configure(pairs ...string) error {
	if len(pairs) > MaxPlugPairs {
		return fmt.Errorf("%w: want at most %d, got %d", ErrTooManyPlugs, MaxPlugPairs, len(pairs))
	}
	next := make([][2]byte, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return fmt.Errorf("%w: %q", ErrInvalidPlug, pair)
		}
		a, okA := letterIndex(pair[0])
		b, okB := letterIndex(pair[1])
		if !okA || !okB || a == b {
			return fmt.Errorf("%w: %q", ErrInvalidPlug, pair)
		}
		next = append(next, [2]byte{byte(a), byte(b)})
	}
	p.pairs = next
	return nil
}

// Swap maps alphabet index i through the board: the partner if i is
// cabled, i itself otherwise.
func (p *Plugboard) Swap(i int) int {
	for _, pair := range p.pairs {
		switch byte(i) {
		case pair[0]:
			return int(pair[1])
		case pair[1]:
			return int(pair[0])
		}
	}
	return i
}

// Pairs returns the cabling as uppercase two-letter strings in
// configured order.
func (p *Plugboard) Pairs() []string {
	out := make([]string, len(p.pairs))
	for i, pair := range p.pairs {
		out[i] = string([]byte{indexLetter(int(pair[0])), indexLetter(int(pair[1]))})
	}
	return out
}

// Len returns the number of cabled pairs.
func (p *Plugboard) Len() int {
	return len(p.pairs)
}
