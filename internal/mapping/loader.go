package mapping

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"oai-dc-mapper/internal/item"
)

// LoadFile loads and parses a YAML crosswalk file from the given path.
func LoadFile(path string) (*Crosswalk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crosswalk file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Crosswalk.
func Parse(data []byte) (*Crosswalk, error) {
	var cw Crosswalk

	err := yaml.Unmarshal(data, &cw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse crosswalk YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cw)

	return &cw, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cw *Crosswalk) {
	if cw.Version == "" {
		cw.Version = "1"
	}

	for i := range cw.Rules {
		r := &cw.Rules[i]
		r.Field = strings.ToLower(strings.TrimSpace(r.Field))

		if r.Set == "" {
			r.Set = item.SetDublinCore
		}

		if r.Handler == 0 {
			r.Handler = HandlerDefault
		}
	}
}

// Marshal serializes a Crosswalk to YAML.
func Marshal(cw *Crosswalk) ([]byte, error) {
	return yaml.Marshal(cw)
}

// WriteFile writes a Crosswalk to the given path.
func WriteFile(cw *Crosswalk, path string) error {
	data, err := Marshal(cw)
	if err != nil {
		return fmt.Errorf("failed to marshal crosswalk: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write crosswalk file %s: %w", path, err)
	}

	return nil
}
