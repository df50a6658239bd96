package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSceneYAML parses a YAML scene document. Fields not present in the
// document keep the Default() values, so a minimal scene only needs to
// name what differs from the defaults.
func ParseSceneYAML(data []byte) (Scene, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parsing scene yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// LoadSceneYAML reads and parses a YAML scene file.
func LoadSceneYAML(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene yaml: %w", err)
	}
	return ParseSceneYAML(data)
}
