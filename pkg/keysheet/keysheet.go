package keysheet

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/preset"
)

// Key sheet errors.
var (
	// ErrInvalidDayCount is returned when a sheet is derived for less
	// than one or more than 366 days.
	ErrInvalidDayCount = errors.New("invalid day count")

	// ErrUnknownDay is returned when a sheet carries no key for the
	// requested day.
	ErrUnknownDay = errors.New("no key for day")
)

// saltKeysheet fixes the HKDF salt so derivations stay stable across
// releases.
const saltKeysheet = "enigma-go/keysheet/v1"

// defaultSlots is the rotor count derived for models without a limit.
const defaultSlots = 3

// Key is one day's machine setting.
type Key struct {
	Day        int      `yaml:"day"`
	Rotors     []string `yaml:"rotors"`
	Positions  string   `yaml:"positions"`
	Reflector  string   `yaml:"reflector,omitempty"`
	EntryWheel string   `yaml:"entry_wheel,omitempty"`
	Plugs      []string `yaml:"plugs,omitempty"`
}

// Sheet is a run of daily keys for one machine model.
type Sheet struct {
	// Version is the sheet file format version.
	Version int `yaml:"version"`

	// Model names the machine model the keys are for.
	Model string `yaml:"model"`

	// IssuedAt is when the sheet was saved.
	IssuedAt time.Time `yaml:"issued_at,omitempty"`

	// Keys holds one entry per day, day 1 first.
	Keys []Key `yaml:"keys"`
}

// Key returns the setting for the given day.
func (s *Sheet) Key(day int) (Key, error) {
	for _, k := range s.Keys {
		if k.Day == day {
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
}

// Days returns the number of keys on the sheet.
func (s *Sheet) Days() int {
	return len(s.Keys)
}

// Derive builds a key sheet for the named model from a shared
// passphrase. The derivation is deterministic: the same model,
// passphrase and day yield the same key on every station.
//
// Each day consumes an independent HKDF-SHA256 stream keyed by the
// passphrase, salted with a fixed sheet-format label and bound to
// "<model>/day/<n>", so keys reveal nothing about neighbouring days.
func Derive(model string, passphrase []byte, days int) (*Sheet, error) {
	if days < 1 || days > 366 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayCount, days)
	}
	manifest, err := preset.Load(model)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Model: manifest.Name,
		Keys:  make([]Key, 0, days),
	}
	for day := 1; day <= days; day++ {
		key, err := deriveDay(manifest, passphrase, day)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", day, err)
		}
		sheet.Keys = append(sheet.Keys, key)
	}
	return sheet, nil
}

func deriveDay(manifest *preset.Manifest, passphrase []byte, day int) (Key, error) {
	slots := manifest.MaxRotors
	if slots <= 0 {
		slots = defaultSlots
	}
	if slots > len(manifest.Rotors) {
		slots = len(manifest.Rotors)
	}

	// One independent stream per day.
	info := fmt.Sprintf("%s/day/%d", manifest.Name, day)
	need := len(manifest.Rotors) + slots + 2 + alphabetLen
	stream := make([]byte, need)
	reader := hkdf.New(sha256.New, passphrase, []byte(saltKeysheet), []byte(info))
	if _, err := io.ReadFull(reader, stream); err != nil {
		return Key{}, fmt.Errorf("deriving key material: %w", err)
	}
	next := func() byte {
		b := stream[0]
		stream = stream[1:]
		return b
	}

	key := Key{Day: day}

	// Rotor order: a derived shuffle of the catalog, first slots taken.
	names := make([]string, len(manifest.Rotors))
	for i, r := range manifest.Rotors {
		names[i] = r.Name
	}
	for i := len(names) - 1; i > 0; i-- {
		j := int(next()) % (i + 1)
		names[i], names[j] = names[j], names[i]
	}
	key.Rotors = names[:slots]

	positions := make([]byte, slots)
	for i := range positions {
		positions[i] = 'A' + next()%alphabetLen
	}
	key.Positions = string(positions)

	if n := len(manifest.Reflectors); n > 0 {
		key.Reflector = manifest.Reflectors[int(next())%n].Name
	} else {
		next()
	}
	if n := len(manifest.EntryWheels); n > 0 {
		key.EntryWheel = manifest.EntryWheels[int(next())%n].Name
	} else {
		next()
	}

	// Plugboard: a derived shuffle of the alphabet, paired off two by
	// two, so the pairs are always disjoint.
	letters := make([]byte, alphabetLen)
	for i := range letters {
		letters[i] = 'A' + byte(i)
	}
	for i := len(letters) - 1; i > 0; i-- {
		j := int(next()) % (i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
	key.Plugs = make([]string, 0, enigma.MaxPlugPairs)
	for i := 0; i < enigma.MaxPlugPairs*2; i += 2 {
		key.Plugs = append(key.Plugs, string(letters[i:i+2]))
	}

	return key, nil
}

const alphabetLen = 26

// Apply sets a machine to a daily key: rotors, reflector, entry wheel,
// plugboard, then positions. The machine must be of the model the sheet
// was derived for.
func Apply(m *enigma.Machine, key Key) error {
	if err := m.SetRotors(key.Rotors...); err != nil {
		return err
	}
	if key.Reflector != "" {
		if err := m.SetReflector(key.Reflector); err != nil {
			return err
		}
	}
	if key.EntryWheel != "" {
		if err := m.SetEntryWheel(key.EntryWheel); err != nil {
			return err
		}
	}
	if err := m.SetPlugboard(key.Plugs...); err != nil {
		return err
	}
	return m.SetRotorPositions(key.Positions)
}
