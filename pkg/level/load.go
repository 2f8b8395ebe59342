package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ParseJSON decodes a Level from JSON bytes, rejecting any numeric literal
// that is not a plain integer (spec §7: "a float anywhere a level expects
// an integer is a level validation error"), then validates the result.
func ParseJSON(data []byte) (*Level, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("level: parsing JSON: %w", err)
	}
	if err := requireIntegers(generic); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: decoding level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadJSON reads and parses a Level from a JSON file on disk.
func LoadJSON(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}
	return ParseJSON(data)
}

// requireIntegers walks a json.Decoder-produced generic value (maps,
// slices, json.Number, string, bool, nil) and errors on the first
// json.Number literal that contains a fractional or exponent part.
func requireIntegers(v interface{}) error {
	switch vv := v.(type) {
	case json.Number:
		if !isIntegerLiteral(vv.String()) {
			return fmt.Errorf("non-integer numeric value %q", vv.String())
		}
	case map[string]interface{}:
		for _, child := range vv {
			if err := requireIntegers(child); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, child := range vv {
			if err := requireIntegers(child); err != nil {
				return err
			}
		}
	}
	return nil
}

func isIntegerLiteral(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return false
		}
	}
	return true
}
