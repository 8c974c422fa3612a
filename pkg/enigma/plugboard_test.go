package enigma

import (
	"errors"
	"strings"
	"testing"
)

func TestPlugboardEmpty(t *testing.T) {
	var p Plugboard
	for i := 0; i < alphabetSize; i++ {
		if got := p.Swap(i); got != i {
			t.Errorf("Swap(%d) = %d, want %d", i, got, i)
		}
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPlugboardConfigure(t *testing.T) {
	var p Plugboard
	if err := p.Configure("AB", "cd"); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	t.Run("SwapsBothWays", func(t *testing.T) {
		if got := p.Swap(0); got != 1 {
			t.Errorf("Swap(A) = %d, want B", got)
		}
		if got := p.Swap(1); got != 0 {
			t.Errorf("Swap(B) = %d, want A", got)
		}
		if got := p.Swap(2); got != 3 {
			t.Errorf("Swap(C) = %d, want D", got)
		}
	})

	t.Run("UncabledPassesThrough", func(t *testing.T) {
		if got := p.Swap(25); got != 25 {
			t.Errorf("Swap(Z) = %d, want Z", got)
		}
	})

	t.Run("PairsUppercased", func(t *testing.T) {
		pairs := p.Pairs()
		if len(pairs) != 2 || pairs[0] != "AB" || pairs[1] != "CD" {
			t.Errorf("Pairs() = %v, want [AB CD]", pairs)
		}
	})
}

func TestPlugboardReconfigureReplaces(t *testing.T) {
	var p Plugboard
	if err := p.Configure("AB"); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := p.Configure("XY"); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	if got := p.Swap(0); got != 0 {
		t.Errorf("Swap(A) = %d after reconfigure, want A", got)
	}
	if got := p.Swap(23); got != 24 {
		t.Errorf("Swap(X) = %d, want Y", got)
	}

	if err := p.Configure(); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after clearing, want 0", p.Len())
	}
}

func TestPlugboardConfigureRejects(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  error
	}{
		{"single letter", []string{"A"}, ErrInvalidPlug},
		{"three letters", []string{"ABC"}, ErrInvalidPlug},
		{"same letter twice", []string{"AA"}, ErrInvalidPlug},
		{"digit", []string{"A1"}, ErrInvalidPlug},
		{"non ascii", []string{"Ä"}, ErrInvalidPlug},
		{"too many pairs", strings.Split("AB CD EF GH IJ KL MN OP QR ST UV", " "), ErrTooManyPlugs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Plugboard
			if err := p.Configure(tt.pairs...); !errors.Is(err, tt.want) {
				t.Errorf("Configure(%v) error = %v, want %v", tt.pairs, err, tt.want)
			}
		})
	}
}

func TestPlugboardConfigureKeepsOldOnError(t *testing.T) {
	var p Plugboard
	if err := p.Configure("AB"); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	if err := p.Configure("CD", "bad"); err == nil {
		t.Fatal("Configure should have failed")
	}

	if got := p.Swap(0); got != 1 {
		t.Errorf("Swap(A) = %d after failed reconfigure, want B", got)
	}
	if got := p.Swap(2); got != 2 {
		t.Errorf("Swap(C) = %d after failed reconfigure, want C", got)
	}
}

func TestPlugboardFirstPairWins(t *testing.T) {
	// B is cabled twice; the earlier pair takes it.
	var p Plugboard
	if err := p.Configure("AB", "BC"); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	if got := p.Swap(1); got != 0 {
		t.Errorf("Swap(B) = %d, want A", got)
	}
	// C still reaches B through its own pair.
	if got := p.Swap(2); got != 1 {
		t.Errorf("Swap(C) = %d, want B", got)
	}
}

func TestPlugboardMaxPairs(t *testing.T) {
	pairs := strings.Split("AB CD EF GH IJ KL MN OP QR ST", " ")
	var p Plugboard
	if err := p.Configure(pairs...); err != nil {
		t.Fatalf("Configure with %d pairs failed: %v", MaxPlugPairs, err)
	}
	if p.Len() != MaxPlugPairs {
		t.Errorf("Len() = %d, want %d", p.Len(), MaxPlugPairs)
	}
}
