package preset

import (
	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/trace"
)

// Builder assembles a configured machine from a model manifest. Setter
// calls only record intent; Build resolves the model and applies the
// whole configuration, returning the first error it hits.
type Builder struct {
	model     string
	rotors    []string
	positions string
	reflector string
	entry     string
	plugs     []string
	tracer    trace.Tracer
}

// NewBuilder starts a builder for the named model.
func NewBuilder(model string) *Builder {
	return &Builder{model: model}
}

// Rotors names the rotors to install, leftmost first.
func (b *Builder) Rotors(names ...string) *Builder {
	b.rotors = names
	return b
}

// Positions sets the starting position letters, one per rotor.
func (b *Builder) Positions(positions string) *Builder {
	b.positions = positions
	return b
}

// Reflector names the reflector to install. Unset, the model's first
// cataloged reflector is used when the model requires one.
func (b *Builder) Reflector(name string) *Builder {
	b.reflector = name
	return b
}

// EntryWheel names the entry wheel to install. Unset, the model's first
// cataloged entry wheel is used when the model requires one.
func (b *Builder) EntryWheel(name string) *Builder {
	b.entry = name
	return b
}

// Plugs sets the plugboard pairs.
func (b *Builder) Plugs(pairs ...string) *Builder {
	b.plugs = pairs
	return b
}

// Tracer attaches a tracer to the machine.
func (b *Builder) Tracer(t trace.Tracer) *Builder {
	b.tracer = t
	return b
}

// Build resolves the model and applies the recorded configuration in
// order: rotors, reflector, entry wheel, plugboard, positions.
func (b *Builder) Build() (*enigma.Machine, error) {
	cfg, err := Config(b.model)
	if err != nil {
		return nil, err
	}
	cfg.Tracer = b.tracer

	m, err := enigma.New(cfg)
	if err != nil {
		return nil, err
	}

	if len(b.rotors) > 0 {
		if err := m.SetRotors(b.rotors...); err != nil {
			return nil, err
		}
	}

	reflector := b.reflector
	if reflector == "" {
		if available := m.AvailableReflectors(); len(available) > 0 {
			reflector = available[0]
		}
	}
	if reflector != "" {
		if err := m.SetReflector(reflector); err != nil {
			return nil, err
		}
	}

	entry := b.entry
	if entry == "" {
		if available := m.AvailableEntryWheels(); len(available) > 0 {
			entry = available[0]
		}
	}
	if entry != "" {
		if err := m.SetEntryWheel(entry); err != nil {
			return nil, err
		}
	}

	if len(b.plugs) > 0 {
		if err := m.SetPlugboard(b.plugs...); err != nil {
			return nil, err
		}
	}

	if b.positions != "" {
		if err := m.SetRotorPositions(b.positions); err != nil {
			return nil, err
		}
	}

	return m, nil
}
