package feeders

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// EnvBinding declares how one environment variable maps into the
// configuration mapping.
type EnvBinding struct {
	// Key is the configuration mapping key to set, e.g. "cfitsioLibs".
	Key string

	// Var is the variable name without the feeder prefix, e.g.
	// "CFITSIO_LIBS".
	Var string

	// List splits the raw value on commas into a string list.
	List bool

	// Type converts a scalar value to the given Go type. Nil means the
	// value stays a string. Ignored when List is set.
	Type reflect.Type
}

// EnvFeeder reads prefixed environment variables into a configuration
// mapping according to its bindings. Unset or empty variables are skipped,
// leaving any value an earlier feeder supplied.
type EnvFeeder struct {
	Prefix   string
	Bindings []EnvBinding
}

// NewEnvFeeder creates an EnvFeeder with the given variable prefix.
func NewEnvFeeder(prefix string, bindings ...EnvBinding) EnvFeeder {
	return EnvFeeder{Prefix: prefix, Bindings: bindings}
}

// Feed applies every binding against the current environment.
func (e EnvFeeder) Feed(into map[string]any) error {
	for _, binding := range e.Bindings {
		if binding.Key == "" {
			return ErrEnvBindingKeyEmpty
		}
		if binding.Var == "" {
			return fmt.Errorf("%w: config key %q", ErrEnvBindingVarEmpty, binding.Key)
		}

		name := strings.ToUpper(binding.Var)
		if e.Prefix != "" {
			name = strings.ToUpper(e.Prefix) + "_" + name
		}

		raw := os.Getenv(name)
		if raw == "" {
			continue
		}

		value, err := convertEnvValue(raw, binding)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		into[binding.Key] = value
	}
	return nil
}

func convertEnvValue(raw string, binding EnvBinding) (any, error) {
	if binding.List {
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	}

	if binding.Type == nil {
		return raw, nil
	}

	converted, err := cast.FromType(raw, binding.Type)
	if err != nil {
		return nil, fmt.Errorf("%w to %v: %w", ErrEnvCastFailed, binding.Type, err)
	}
	return converted, nil
}
