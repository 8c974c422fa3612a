// Package keysheet derives and stores daily key sheets: the rotor
// order, ring positions, reflector and plugboard cabling operators set
// their machines to each day.
//
// A sheet is derived deterministically from a shared passphrase, so two
// stations holding the same passphrase derive identical sheets without
// ever exchanging one:
//
//	sheet, err := keysheet.Derive(preset.M3, passphrase, 31)
//	machine, err := preset.New(preset.M3)
//	key, _ := sheet.Key(day)
//	err = keysheet.Apply(machine, key)
//
// Sheets persist as YAML files readable by the enigma CLI's sheet
// commands.
package keysheet
