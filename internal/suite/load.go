package suite

import (
	"fmt"
	"os"
)

// Parse reads a suite from src. name is used in error positions.
func Parse(name, src string) (*Suite, error) {
	s, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	return s, nil
}

// Load reads and parses the suite file at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}
