package payload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no payload is stored under a name.
var ErrNotFound = errors.New("payload not found")

// Dir serves payloads the API client already fetched and wrote to disk,
// one "<name>.json" file per response body.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) Load(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid payload name %q", name)
	}

	raw, err := os.ReadFile(filepath.Join(d.root, name+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading payload %s: %w", name, err)
	}
	return raw, nil
}
