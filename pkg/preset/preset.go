package preset

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/enigma-sim/enigma-go/pkg/catalog"
	"github.com/enigma-sim/enigma-go/pkg/enigma"
)

//go:embed models/*.yaml
var modelFS embed.FS

// Historical machine models shipped with this package.
const (
	Commercial = "Commercial"
	Rocket     = "Rocket"
	Swiss      = "Swiss"
	M3         = "M3"
	M4         = "M4"
	M4Thin     = "M4-Thin"
	Custom     = "Custom"
)

// Manifest describes one machine model: identity, rotor budget and the
// component wirings it was delivered with.
type Manifest struct {
	Name        string     `yaml:"name"`
	Year        int        `yaml:"year"`
	MaxRotors   int        `yaml:"max_rotors"`
	Rotors      []WheelDef `yaml:"rotors"`
	Reflectors  []WheelDef `yaml:"reflectors"`
	EntryWheels []WheelDef `yaml:"entry_wheels"`
}

// WheelDef is a named wiring, with notch letters for rotors.
type WheelDef struct {
	Name    string `yaml:"name"`
	Wiring  string `yaml:"wiring"`
	Notches string `yaml:"notches,omitempty"`
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Manifest)
)

// Load returns the manifest of the named model. Names are
// case-insensitive; see Models for the shipped set.
func Load(model string) (*Manifest, error) {
	key := strings.ToLower(model)

	cacheMu.RLock()
	if m, ok := cache[key]; ok {
		cacheMu.RUnlock()
		return m, nil
	}
	cacheMu.RUnlock()

	data, err := modelFS.ReadFile("models/" + key + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("model %q not found, available: %s", model, strings.Join(Models(), ", "))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model %q: %w", model, err)
	}

	cacheMu.Lock()
	cache[key] = &m
	cacheMu.Unlock()

	return &m, nil
}

// Models returns the shipped model names in order of introduction.
func Models() []string {
	return []string{Commercial, M3, M4, M4Thin, Swiss, Rocket, Custom}
}

// Catalog builds a validating component catalog from the manifest.
func (m *Manifest) Catalog() (*catalog.Catalog, error) {
	c := catalog.New()
	for _, w := range m.Rotors {
		if err := c.AddRotor(w.Name, enigma.RotorSpec{Alphabet: w.Wiring, Notches: w.Notches}); err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
	}
	for _, w := range m.Reflectors {
		if err := c.AddReflector(w.Name, w.Wiring); err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
	}
	for _, w := range m.EntryWheels {
		if err := c.AddEntryWheel(w.Name, w.Wiring); err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
	}
	return c, nil
}

// Config resolves the named model into a machine configuration. The
// caller may attach a tracer before handing it to enigma.New.
func Config(model string) (enigma.Config, error) {
	m, err := Load(model)
	if err != nil {
		return enigma.Config{}, err
	}
	cat, err := m.Catalog()
	if err != nil {
		return enigma.Config{}, err
	}
	return enigma.Config{
		Name:      m.Name,
		Year:      m.Year,
		MaxRotors: m.MaxRotors,
		Catalog:   cat,
	}, nil
}

// New assembles an empty machine of the named model. Components are
// installed afterwards, directly or through a Builder.
func New(model string) (*enigma.Machine, error) {
	cfg, err := Config(model)
	if err != nil {
		return nil, err
	}
	return enigma.New(cfg)
}
