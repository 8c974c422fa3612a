package enigma

import (
	"errors"
	"testing"
)

// testBank assembles rotors I, II and III style wheels by catalog name,
// leftmost first, with the given starting positions.
func testBank(t *testing.T, models string, positions string) *RotorBank {
	t.Helper()
	specs := map[byte]struct {
		alphabet string
		notches  string
	}{
		'1': {wiringI, "Q"},
		'2': {wiringII, "E"},
		'3': {wiringIII, "V"},
	}

	var b RotorBank
	for i := 0; i < len(models); i++ {
		spec, ok := specs[models[i]]
		if !ok {
			t.Fatalf("unknown test rotor %c", models[i])
		}
		r, err := NewRotor(string(models[i]), spec.alphabet, spec.notches, positions[i])
		if err != nil {
			t.Fatalf("NewRotor failed: %v", err)
		}
		b.Add(r)
	}
	return &b
}

func TestBankStepSequences(t *testing.T) {
	tests := []struct {
		name   string
		models string
		start  string
		want   []string
	}{
		{
			// The middle rotor is dragged onto its notch by a notch
			// hit and then double-steps on the following keypress.
			name:   "turnover and double step",
			models: "123",
			start:  "ADT",
			want:   []string{"ADU", "ADV", "AEW", "BFX", "BFY"},
		},
		{
			// Same mechanism with the bank order reversed: the notch
			// letters travel with the wheels, not the slots.
			name:   "reversed rotor order",
			models: "321",
			start:  "KDO",
			want:   []string{"KDP", "KDQ", "KER", "LFS", "LFT", "LFU"},
		},
		{
			// A plain turnover with the middle rotor far from its own
			// notch: no double step follows.
			name:   "plain turnover",
			models: "123",
			start:  "AAT",
			want:   []string{"AAU", "AAV", "ABW", "ABX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBank(t, tt.models, tt.start)
			for i, want := range tt.want {
				b.Step()
				if got := b.Positions(); got != want {
					t.Fatalf("keypress %d: positions = %s, want %s", i+1, got, want)
				}
			}
		})
	}
}

func TestBankStepEvents(t *testing.T) {
	b := testBank(t, "123", "ADV")

	// V is rotor III's notch: stepping off it advances rotor II too.
	events := b.Step()
	if len(events) != 2 {
		t.Fatalf("got %d step events, want 2", len(events))
	}

	if events[0].Index != 2 || events[0].Model != "3" || events[0].From != 'V' || events[0].To != 'W' {
		t.Errorf("events[0] = %+v, want index 2 V->W", events[0])
	}
	if events[1].Index != 1 || events[1].Model != "2" || events[1].From != 'D' || events[1].To != 'E' {
		t.Errorf("events[1] = %+v, want index 1 D->E", events[1])
	}
}

func TestBankStepDoubleStepEvents(t *testing.T) {
	b := testBank(t, "123", "AEA")

	// The middle rotor rests on its notch E: it advances itself and the
	// rotor to its left in the same keypress.
	events := b.Step()
	if len(events) != 3 {
		t.Fatalf("got %d step events, want 3", len(events))
	}
	if events[0].Index != 2 {
		t.Errorf("events[0].Index = %d, want 2", events[0].Index)
	}
	if events[1].Index != 1 || events[1].From != 'E' || events[1].To != 'F' {
		t.Errorf("events[1] = %+v, want index 1 E->F", events[1])
	}
	if events[2].Index != 0 || events[2].From != 'A' || events[2].To != 'B' {
		t.Errorf("events[2] = %+v, want index 0 A->B", events[2])
	}
}

func TestBankStepSingleRotor(t *testing.T) {
	b := testBank(t, "1", "Z")

	b.Step()
	if got := b.Positions(); got != "A" {
		t.Errorf("positions = %s, want A", got)
	}

	// A lone rotor crossing its notch has no neighbour to advance.
	if err := b.SetPositions("Q"); err != nil {
		t.Fatalf("SetPositions failed: %v", err)
	}
	events := b.Step()
	if len(events) != 1 {
		t.Errorf("got %d step events, want 1", len(events))
	}
	if got := b.Positions(); got != "R" {
		t.Errorf("positions = %s, want R", got)
	}
}

func TestBankStepEmpty(t *testing.T) {
	var b RotorBank
	if events := b.Step(); events != nil {
		t.Errorf("Step() on empty bank = %v, want nil", events)
	}
}

func TestBankSignalPathInverts(t *testing.T) {
	b := testBank(t, "123", "QEV")
	for i := 0; i < alphabetSize; i++ {
		if got := b.Backward(b.Forward(i)); got != i {
			t.Errorf("Backward(Forward(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestBankSetPositions(t *testing.T) {
	b := testBank(t, "123", "AAA")

	if err := b.SetPositions("xyz"); err != nil {
		t.Fatalf("SetPositions failed: %v", err)
	}
	if got := b.Positions(); got != "XYZ" {
		t.Errorf("Positions() = %s, want XYZ", got)
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		if err := b.SetPositions("AB"); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("error = %v, want ErrInvalidPosition", err)
		}
		if err := b.SetPositions(""); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("error = %v, want ErrInvalidPosition", err)
		}
	})

	t.Run("NoPartialApply", func(t *testing.T) {
		if err := b.SetPositions("AB!"); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("error = %v, want ErrInvalidPosition", err)
		}
		if got := b.Positions(); got != "XYZ" {
			t.Errorf("Positions() = %s after failed SetPositions, want XYZ", got)
		}
	})
}

func TestBankModels(t *testing.T) {
	b := testBank(t, "321", "AAA")
	models := b.Models()
	if len(models) != 3 || models[0] != "3" || models[1] != "2" || models[2] != "1" {
		t.Errorf("Models() = %v, want [3 2 1]", models)
	}

	b.RemoveAll()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after RemoveAll, want 0", b.Len())
	}
	if got := b.Positions(); got != "" {
		t.Errorf("Positions() = %q after RemoveAll, want \"\"", got)
	}
}
