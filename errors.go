package timesystem

import (
	"errors"
)

var (
	// Environment errors
	ErrNilEnvironment = errors.New("environment is nil")

	// Configuration errors
	ErrConfigKeyNotFound  = errors.New("config key not found")
	ErrConfigValueInvalid = errors.New("config value has invalid type")

	// Tool registry errors
	ErrToolAlreadyRegistered = errors.New("tool already registered")
	ErrToolNotFound          = errors.New("tool not found")
	ErrToolNameEmpty         = errors.New("tool name is empty")
	ErrToolNil               = errors.New("tool is nil")
)
