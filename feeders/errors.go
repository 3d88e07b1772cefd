package feeders

import (
	"errors"
)

// Static error definitions for feeders.
var (
	ErrYamlReadFailed  = errors.New("failed to read YAML file")
	ErrYamlParseFailed = errors.New("failed to parse YAML file")

	ErrTomlReadFailed  = errors.New("failed to read TOML file")
	ErrTomlParseFailed = errors.New("failed to parse TOML file")

	ErrEnvBindingKeyEmpty = errors.New("env binding has empty config key")
	ErrEnvBindingVarEmpty = errors.New("env binding has empty variable name")
	ErrEnvCastFailed      = errors.New("cannot convert environment value")
)
