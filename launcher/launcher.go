// Package launcher reads the packaging descriptor bundled with the binary.
package launcher

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/flow-hydraulics/launcher-settings/errors"
)

//go:embed package.json
var packageJSON []byte

type Descriptor struct {
	Version string `json:"version"`
}

// Read parses the bundled packaging descriptor.
func Read() (*Descriptor, error) {
	return Parse(packageJSON)
}

func Parse(b []byte) (*Descriptor, error) {
	d := &Descriptor{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("%w: package descriptor: %s", errors.ErrDeserialization, err)
	}
	if d.Version == "" {
		return nil, fmt.Errorf("%w: package descriptor has no version", errors.ErrDeserialization)
	}
	return d, nil
}
