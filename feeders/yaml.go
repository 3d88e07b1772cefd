// Package feeders populates a build environment's configuration mapping
// from external sources: YAML files, TOML files, and environment variables.
// Feeders are applied in order by buildenv.WithFeeders; later feeders
// overwrite keys set by earlier ones.
package feeders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YamlFeeder reads a YAML file into a configuration mapping.
type YamlFeeder struct {
	Path string
}

// NewYamlFeeder creates a YamlFeeder that reads from the specified file.
func NewYamlFeeder(filePath string) YamlFeeder {
	return YamlFeeder{Path: filePath}
}

// Feed merges the file's top-level keys into the mapping.
func (y YamlFeeder) Feed(into map[string]any) error {
	data, err := os.ReadFile(y.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrYamlReadFailed, err)
	}

	var all map[string]any
	if err := yaml.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("%w: %w", ErrYamlParseFailed, err)
	}

	for key, value := range all {
		into[key] = value
	}
	return nil
}

// FeedKey reads the file and extracts a single key into target, remarshaling
// the value to handle type conversions. A missing key leaves target
// untouched.
func (y YamlFeeder) FeedKey(key string, target any) error {
	all := make(map[string]any)
	if err := y.Feed(all); err != nil {
		return err
	}

	value, exists := all[key]
	if !exists {
		return nil
	}

	valueBytes, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	if err := yaml.Unmarshal(valueBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal value to target: %w", err)
	}
	return nil
}
