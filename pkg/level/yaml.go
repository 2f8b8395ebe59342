package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a Level from an authoring-format YAML document,
// rejecting any scalar that YAML tagged as a float (the same
// integer-only rule ParseJSON enforces), then validates the result.
func ParseYAML(data []byte) (*Level, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("level: parsing YAML: %w", err)
	}
	if err := requireIntegerYAML(&root); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: decoding level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadYAML reads and parses a Level from an authoring-format YAML file.
func LoadYAML(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ToYAML serializes l back to authoring-format YAML, e.g. for round-trip
// editing tools.
func (l *Level) ToYAML() ([]byte, error) {
	return yaml.Marshal(l)
}

func requireIntegerYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!float" {
		return fmt.Errorf("non-integer numeric value %q at line %d", n.Value, n.Line)
	}
	for _, child := range n.Content {
		if err := requireIntegerYAML(child); err != nil {
			return err
		}
	}
	return nil
}
