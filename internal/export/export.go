// Package export serializes territory lists for external consumers.
// Import is structural only: it decodes whatever the document holds
// without re-checking generation invariants, which are the producer's
// responsibility.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/talgya/realmgen/internal/territory"
)

// Write encodes the territory list as indented JSON.
func Write(w io.Writer, list []territory.Territory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("export: encode territory list: %w", err)
	}
	return nil
}

// Read decodes a territory list previously written by Write.
func Read(r io.Reader) ([]territory.Territory, error) {
	var list []territory.Territory
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("export: decode territory list: %w", err)
	}
	return list, nil
}

// WriteFile writes the territory list to a JSON file.
func WriteFile(path string, list []territory.Territory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, list); err != nil {
		return err
	}
	return f.Close()
}

// ReadFile reads a territory list from a JSON file.
func ReadFile(path string) ([]territory.Territory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
