package timesystem

import (
	"fmt"
)

// Environment is the build orchestrator's registration surface. It exposes
// exactly the two capabilities a tool needs: registering dependencies and
// reading the configuration mapping. The real orchestrator implements it;
// the buildenv package provides an in-memory implementation for tests and
// embedding.
type Environment interface {
	// Tool registers the named build tool as a dependency. Some
	// orchestrators derive link order from registration order, so callers
	// must register tools in the order they want them linked.
	Tool(name string) error

	// AddLibrary registers one or more library artifacts to be produced
	// or linked by the orchestrator.
	AddLibrary(libraries ...string) error

	// ConfigValue returns the value bound to key in the environment's
	// configuration mapping, and whether the key is present.
	ConfigValue(key string) (any, bool)
}

// ConfigStrings reads key from the environment's configuration mapping and
// returns its value as a list of library names. A bare string is treated as
// a single-element list. Returns ErrConfigKeyNotFound when the key is absent
// and ErrConfigValueInvalid when the bound value is not a string list.
func ConfigStrings(env Environment, key string) ([]string, error) {
	value, ok := env.ConfigValue(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigKeyNotFound, key)
	}

	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q[%d] is %T, want string", ErrConfigValueInvalid, key, i, elem)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T, want string list", ErrConfigValueInvalid, key, value)
	}
}
