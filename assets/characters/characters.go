// Package characters loads the character catalog, either from disk or the
// copy embedded in the binary.
package characters

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/automoto/overworld/config/catalog"
)

//go:embed characters.yaml
var embedded []byte

// EmbeddedName labels the embedded catalog in logs and errors.
const EmbeddedName = "embedded:characters.yaml"

// Load reads the catalog from path, or the embedded catalog when path is
// empty. The catalog is decoded but not validated.
func Load(path string) (*catalog.CharactersList, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	list, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("characters: %s: %w", displayPath(path), err)
	}
	return list, nil
}

func read(path string) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("characters: read catalog: %w", err)
	}
	return data, nil
}

func displayPath(path string) string {
	if path == "" {
		return EmbeddedName
	}
	return path
}
