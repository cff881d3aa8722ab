// Package catalog loads the optional seed catalog: a YAML file of starter
// listings inserted into the store when they are not already present.
package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dastodo/market/internal/utils"
)

// Loader handles loading and parsing of the seed catalog file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given seed file.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file.
func (l *Loader) Load() (*SeedFile, error) {
	f, err := os.Open(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer utils.Close(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return &seed, nil
}
