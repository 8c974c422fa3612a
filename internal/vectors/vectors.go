package vectors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/preset"
)

// Parse parses a vector suite from YAML bytes.
func Parse(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if suite.Name == "" {
		return nil, &LoadError{
			Message: "suite name is required",
		}
	}
	if len(suite.Cases) == 0 {
		return nil, &LoadError{
			Message: "suite must have at least one case",
		}
	}

	for i, c := range suite.Cases {
		if c.Name == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("case %d: name is required", i),
			}
		}
		if c.Model == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("case %q: model is required", c.Name),
			}
		}
		if len(c.Rotors) == 0 {
			return nil, &LoadError{
				Message: fmt.Sprintf("case %q: rotors are required", c.Name),
			}
		}
		if c.Positions == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("case %q: positions are required", c.Name),
			}
		}
		if c.Input == "" && c.Presses == 0 {
			return nil, &LoadError{
				Message: fmt.Sprintf("case %q: needs an input or a press count", c.Name),
			}
		}
	}

	return &suite, nil
}

// Load loads a vector suite from a file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	suite, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return suite, nil
}

// LoadDirectory loads all vector suites from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	var suites []*Suite
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		suite, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}

	return suites, nil
}

// Machine builds the configured machine the case describes.
func (c *Case) Machine() (*enigma.Machine, error) {
	b := preset.NewBuilder(c.Model).
		Rotors(c.Rotors...).
		Positions(c.Positions)
	if c.Reflector != "" {
		b = b.Reflector(c.Reflector)
	}
	if c.EntryWheel != "" {
		b = b.EntryWheel(c.EntryWheel)
	}
	if len(c.Plugs) > 0 {
		b = b.Plugs(c.Plugs...)
	}
	return b.Build()
}
