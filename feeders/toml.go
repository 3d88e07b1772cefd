package feeders

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TomlFeeder reads a TOML file into a configuration mapping.
type TomlFeeder struct {
	Path string
}

// NewTomlFeeder creates a TomlFeeder that reads from the specified file.
func NewTomlFeeder(filePath string) TomlFeeder {
	return TomlFeeder{Path: filePath}
}

// Feed merges the file's top-level keys into the mapping.
func (t TomlFeeder) Feed(into map[string]any) error {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTomlReadFailed, err)
	}

	var all map[string]any
	if err := toml.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("%w: %w", ErrTomlParseFailed, err)
	}

	for key, value := range all {
		into[key] = value
	}
	return nil
}

// FeedKey reads the file and extracts a single key into target, deferring
// the value's decoding so it lands directly in target's type. A missing key
// leaves target untouched.
func (t TomlFeeder) FeedKey(key string, target any) error {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTomlReadFailed, err)
	}

	var all map[string]toml.Primitive
	md, err := toml.Decode(string(data), &all)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTomlParseFailed, err)
	}

	value, exists := all[key]
	if !exists {
		return nil
	}

	if err := md.PrimitiveDecode(value, target); err != nil {
		return fmt.Errorf("failed to decode value to target: %w", err)
	}
	return nil
}
