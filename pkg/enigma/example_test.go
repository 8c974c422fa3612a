package enigma_test

import (
	"fmt"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/preset"
)

func ExampleMachine_Encode() {
	m, err := preset.NewBuilder("M3").
		Rotors("I", "II", "III").
		Positions("AAA").
		Reflector("B").
		Build()
	if err != nil {
		panic(err)
	}

	ciphertext, err := m.Encode("AAAAA", false)
	if err != nil {
		panic(err)
	}
	fmt.Println(ciphertext)
	// Output: DHLXO
}

func ExampleMachine_Encode_roundTrip() {
	build := func() *enigma.Machine {
		m, err := preset.NewBuilder("M3").
			Rotors("II", "I", "III").
			Positions("KEY").
			Reflector("C").
			Plugs("AQ", "EN").
			Build()
		if err != nil {
			panic(err)
		}
		return m
	}

	ciphertext, _ := build().Encode("ATTACK AT DAWN", false)
	plaintext, _ := build().Encode(ciphertext, false)

	fmt.Println(plaintext)
	// Output: ATTACK AT DAWN
}

func ExampleFormatGroups() {
	fmt.Println(enigma.FormatGroups("WEATHERREPORT"))
	// Output: WEATH ERREP ORT
}
