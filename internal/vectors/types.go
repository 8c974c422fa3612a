// Package vectors loads YAML-defined machine vectors for tests: known
// configurations with the position trails, ciphertexts or round trips
// they must produce.
package vectors

// Suite is one vector file.
type Suite struct {
	// Name identifies the suite (e.g. "stepping").
	Name string `yaml:"name"`

	// Description explains what the suite pins down.
	Description string `yaml:"description,omitempty"`

	// Cases are the vectors, run in order.
	Cases []*Case `yaml:"cases"`
}

// Case is a single machine vector.
type Case struct {
	// Name is a human-readable case identifier.
	Name string `yaml:"name"`

	// Description explains what the case exercises.
	Description string `yaml:"description,omitempty"`

	// Model is the preset model to build.
	Model string `yaml:"model"`

	// Rotors names the rotors to install, leftmost first.
	Rotors []string `yaml:"rotors"`

	// Positions is the starting position letters, one per rotor.
	Positions string `yaml:"positions"`

	// Reflector overrides the model's default reflector.
	Reflector string `yaml:"reflector,omitempty"`

	// EntryWheel overrides the model's default entry wheel.
	EntryWheel string `yaml:"entry_wheel,omitempty"`

	// Plugs is the plugboard cabling.
	Plugs []string `yaml:"plugs,omitempty"`

	// Input is the text to encode. Empty for pure stepping vectors.
	Input string `yaml:"input,omitempty"`

	// Presses is the number of keypresses for stepping vectors.
	Presses int `yaml:"presses,omitempty"`

	// Want holds the expected outcomes.
	Want Want `yaml:"want,omitempty"`
}

// Want describes a case's expected outcomes. Round-trip vectors leave
// all fields empty: the expectation is that re-encoding the ciphertext
// from the starting positions restores the input.
type Want struct {
	// Output is the expected ciphertext.
	Output string `yaml:"output,omitempty"`

	// Positions is the expected rotor positions after the run.
	Positions string `yaml:"positions,omitempty"`

	// Trail is the expected positions after each keypress, in order.
	Trail []string `yaml:"trail,omitempty"`
}

// LoadError provides details about a vector loading error.
type LoadError struct {
	// File is the path that failed to load, if known.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return e.File + ": " + e.Message
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
