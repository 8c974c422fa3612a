package enigma

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enigma-sim/enigma-go/pkg/trace"
)

// Config carries everything New needs to assemble a machine.
type Config struct {
	// Name of the machine model, e.g. "M3".
	Name string

	// Year the model was introduced.
	Year int

	// MaxRotors limits how many rotors fit in the bank. Zero or
	// negative means unlimited.
	MaxRotors int

	// Catalog supplies the installable component wirings. Required.
	Catalog Catalog

	// Tracer receives one event per keypress and per configuration
	// change. Optional; nil disables tracing.
	Tracer trace.Tracer
}

// Machine is an assembled rotor cipher machine. It is not safe for
// concurrent use: encoding mutates rotor positions.
type Machine struct {
	name      string
	year      int
	maxRotors int
	catalog   Catalog

	bank      RotorBank
	reflector *Stator
	entry     *Stator
	plugboard Plugboard

	// Resolved once from the catalog: a machine requires a reflector or
	// an entry wheel exactly when its catalog offers at least one.
	needsReflector bool
	needsEntry     bool

	tracer    trace.Tracer
	sessionID string
	seq       uint64
}

// New assembles an empty machine around a component catalog. Rotors,
// reflector, entry wheel and plugboard are installed afterwards through
// the Set methods.
func New(cfg Config) (*Machine, error) {
	if cfg.Catalog == nil {
		return nil, ErrNoCatalog
	}
	return &Machine{
		name:           cfg.Name,
		year:           cfg.Year,
		maxRotors:      cfg.MaxRotors,
		catalog:        cfg.Catalog,
		needsReflector: len(cfg.Catalog.Reflectors()) > 0,
		needsEntry:     len(cfg.Catalog.EntryWheels()) > 0,
		tracer:         cfg.Tracer,
		sessionID:      uuid.NewString(),
	}, nil
}

// AddRotor installs the named rotor at the right end of the bank, turned
// to the given starting position.
func (m *Machine) AddRotor(name string, position byte) error {
	if m.maxRotors > 0 && m.bank.Len() >= m.maxRotors {
		return fmt.Errorf("%w: %s holds at most %d", ErrTooManyRotors, m.name, m.maxRotors)
	}
	spec, ok := m.catalog.Rotor(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownRotor)
	}
	r, err := NewRotor(name, spec.Alphabet, spec.Notches, position)
	if err != nil {
		return err
	}
	m.bank.Add(r)
	m.emitConfig("addRotor", fmt.Sprintf("%s at %c", name, r.Position()))
	return nil
}

// SetRotors replaces the whole bank with the named rotors, leftmost
// first, all turned to position A. On error the previous bank is kept.
func (m *Machine) SetRotors(names ...string) error {
	if m.maxRotors > 0 && len(names) > m.maxRotors {
		return fmt.Errorf("%w: %s holds at most %d", ErrTooManyRotors, m.name, m.maxRotors)
	}
	rotors := make([]*Rotor, 0, len(names))
	for _, name := range names {
		spec, ok := m.catalog.Rotor(name)
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownRotor)
		}
		r, err := NewRotor(name, spec.Alphabet, spec.Notches, 'A')
		if err != nil {
			return err
		}
		rotors = append(rotors, r)
	}
	m.bank.RemoveAll()
	for _, r := range rotors {
		m.bank.Add(r)
	}
	m.emitConfig("setRotors", strings.Join(names, " "))
	return nil
}

// RemoveRotors uninstalls every rotor.
func (m *Machine) RemoveRotors() {
	m.bank.RemoveAll()
	m.emitConfig("removeRotors", "")
}

// SetRotorPositions turns every installed rotor at once, leftmost first.
// Validation happens before any rotor moves.
func (m *Machine) SetRotorPositions(positions string) error {
	if err := m.bank.SetPositions(positions); err != nil {
		return err
	}
	m.emitConfig("setRotorPositions", m.bank.Positions())
	return nil
}

// SetReflector installs the named reflector. Its wiring must be an
// involution.
func (m *Machine) SetReflector(name string) error {
	alphabet, ok := m.catalog.Reflector(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownReflector)
	}
	refl, err := NewReflector(name, alphabet)
	if err != nil {
		return err
	}
	m.reflector = refl
	m.emitConfig("setReflector", name)
	return nil
}

// SetEntryWheel installs the named entry wheel.
func (m *Machine) SetEntryWheel(name string) error {
	alphabet, ok := m.catalog.EntryWheel(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownEntryWheel)
	}
	etw, err := NewStator(name, alphabet)
	if err != nil {
		return err
	}
	m.entry = etw
	m.emitConfig("setEntryWheel", name)
	return nil
}

// SetPlugboard replaces the plugboard cabling. On error the previous
// cabling is kept.
func (m *Machine) SetPlugboard(pairs ...string) error {
	if err := m.plugboard.Configure(pairs...); err != nil {
		return err
	}
	m.emitConfig("setPlugboard", strings.Join(m.plugboard.Pairs(), " "))
	return nil
}

// Encode runs text through the machine and returns the result. Letters
// of either case encode to uppercase; any other character passes through
// untouched, or is dropped when format is true and the output is
// regrouped into five-letter blocks.
//
// Encoding is self-inverse: a machine returned to the same starting
// configuration turns ciphertext back into plaintext, so there is no
// separate decode.
func (m *Machine) Encode(text string, format bool) (string, error) {
	if m.bank.Len() == 0 {
		return "", ErrNoRotors
	}
	if m.needsReflector && m.reflector == nil {
		return "", fmt.Errorf("%s: %w", m.name, ErrNoReflector)
	}
	if m.needsEntry && m.entry == nil {
		return "", fmt.Errorf("%s: %w", m.name, ErrNoEntryWheel)
	}

	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if !isLetter(r) {
			if !format {
				out.WriteRune(r)
			}
			continue
		}
		in, _ := letterIndex(byte(r))
		steps := m.bank.Step()
		c := m.plugboard.Swap(in)
		if m.entry != nil {
			c = m.entry.Forward(c)
		}
		c = m.bank.Forward(c)
		if m.reflector != nil {
			c = m.reflector.Forward(c)
		}
		c = m.bank.Backward(c)
		if m.entry != nil {
			c = m.entry.Backward(c)
		}
		c = m.plugboard.Swap(c)
		out.WriteByte(indexLetter(c))
		m.emitKeypress(indexLetter(in), indexLetter(c), steps)
	}
	if format {
		return FormatGroups(out.String()), nil
	}
	return out.String(), nil
}

// RotorPositions returns the position letters of the installed rotors,
// leftmost first.
func (m *Machine) RotorPositions() string {
	return m.bank.Positions()
}

// RotorModels returns the catalog names of the installed rotors,
// leftmost first.
func (m *Machine) RotorModels() []string {
	return m.bank.Models()
}

// ReflectorModel returns the installed reflector's name, or "" when none
// is installed.
func (m *Machine) ReflectorModel() string {
	if m.reflector == nil {
		return ""
	}
	return m.reflector.Model()
}

// EntryWheelModel returns the installed entry wheel's name, or "" when
// none is installed.
func (m *Machine) EntryWheelModel() string {
	if m.entry == nil {
		return ""
	}
	return m.entry.Model()
}

// PlugboardPairs returns the plugboard cabling in configured order.
func (m *Machine) PlugboardPairs() []string {
	return m.plugboard.Pairs()
}

// AvailableRotors lists the rotor names the catalog offers.
func (m *Machine) AvailableRotors() []string {
	return m.catalog.Rotors()
}

// AvailableReflectors lists the reflector names the catalog offers.
func (m *Machine) AvailableReflectors() []string {
	return m.catalog.Reflectors()
}

// AvailableEntryWheels lists the entry wheel names the catalog offers.
func (m *Machine) AvailableEntryWheels() []string {
	return m.catalog.EntryWheels()
}

// MaxRotors returns the bank limit, zero meaning unlimited.
func (m *Machine) MaxRotors() int {
	if m.maxRotors < 0 {
		return 0
	}
	return m.maxRotors
}

// Name returns the machine model name.
func (m *Machine) Name() string {
	return m.name
}

// Year returns the year the model was introduced.
func (m *Machine) Year() int {
	return m.year
}

// SessionID returns the identifier stamped on every trace event this
// machine emits.
func (m *Machine) SessionID() string {
	return m.sessionID
}

// String renders the machine state in one line.
func (m *Machine) String() string {
	etw, ukw := "N/A", "N/A"
	if m.entry != nil {
		etw = m.entry.Model()
	}
	if m.reflector != nil {
		ukw = m.reflector.Model()
	}
	return fmt.Sprintf("Enigma machine model %s, built in %d. Current ETW: %s. Current UKW: %s. Current rotors position: %s.",
		m.name, m.year, etw, ukw, m.bank.Positions())
}

func (m *Machine) emitConfig(op, detail string) {
	if m.tracer == nil {
		return
	}
	m.seq++
	m.tracer.Trace(trace.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Seq:       m.seq,
		Kind:      trace.KindConfig,
		Machine:   m.name,
		Config:    &trace.ConfigEvent{Op: op, Detail: detail},
	})
}

func (m *Machine) emitKeypress(in, out byte, steps []StepEvent) {
	if m.tracer == nil {
		return
	}
	keypress := &trace.KeypressEvent{
		Input:     string(rune(in)),
		Output:    string(rune(out)),
		Positions: m.bank.Positions(),
	}
	if len(steps) > 0 {
		keypress.Steps = make([]trace.RotorStep, len(steps))
		for i, s := range steps {
			keypress.Steps[i] = trace.RotorStep{
				Index: s.Index,
				Model: s.Model,
				From:  string(rune(s.From)),
				To:    string(rune(s.To)),
			}
		}
	}
	m.seq++
	m.tracer.Trace(trace.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Seq:       m.seq,
		Kind:      trace.KindKeypress,
		Machine:   m.name,
		Keypress:  keypress,
	})
}

// FormatGroups strips spaces from s and regroups it into blocks of five
// characters separated by single spaces.
func FormatGroups(s string) string {
	compact := strings.ReplaceAll(s, " ", "")
	var b strings.Builder
	b.Grow(len(compact) + len(compact)/5)
	for i := 0; i < len(compact); i += 5 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 5
		if end > len(compact) {
			end = len(compact)
		}
		b.WriteString(compact[i:end])
	}
	return b.String()
}
