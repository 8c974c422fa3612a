// Command enigma encrypts and decrypts text with historical rotor
// cipher machines, manages derived key sheets and inspects keypress
// trace files.
package main

import (
	"os"

	"github.com/enigma-sim/enigma-go/cmd/enigma/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
