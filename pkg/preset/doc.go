// Package preset ships the historical machine models as embedded wiring
// manifests and assembles machines from them.
//
// Each model is one YAML manifest under models/ carrying the rotor,
// reflector and entry wheel wirings the machine was delivered with, plus
// its year and rotor budget. Load parses and caches a manifest; Builder
// turns one into a configured machine:
//
//	machine, err := preset.NewBuilder(preset.M3).
//		Rotors("I", "II", "III").
//		Reflector("B").
//		Positions("KDO").
//		Build()
//
// Omitted components fall back to the first catalog entry when the
// model requires one, so a bare Rotors(...) call yields a working
// machine for every model.
package preset
