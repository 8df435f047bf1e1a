package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	err := yaml.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = "1"
	}

	if p.Rows == 0 {
		p.Rows = DefaultRows
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Profile to the given path.
func WriteFile(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}
