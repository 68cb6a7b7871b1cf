package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a theme definition from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme from YAML. Unknown fields are rejected so malformed
// definitions fail here, at the model boundary, instead of surfacing as
// half-applied plans.
func Parse(data []byte) (*Theme, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Theme
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("theme file is empty")
		}
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &t, nil
}
