// Package buildenv provides an in-memory build environment. It records the
// registrations a tool issues, serves configuration from a mapping populated
// by feeders, and notifies observers of registration activity.
//
// BuildEnv is the lightweight stand-in for a real build orchestrator: tests
// use it to assert on registration sequences, and orchestrator integrations
// can embed it as their recording surface.
package buildenv

import (
	"context"
	"fmt"
	"sync"

	"github.com/fermi-lat/timesystem"
)

// Registration is a single recorded call into the environment.
type Registration struct {
	// Kind distinguishes tool registrations from library registrations.
	Kind RegistrationKind

	// Names are the registered identifiers: a single tool name, or the
	// libraries passed to one AddLibrary call.
	Names []string
}

// RegistrationKind identifies the registration capability that was invoked.
type RegistrationKind string

const (
	KindTool    RegistrationKind = "tool"
	KindLibrary RegistrationKind = "library"
)

// BuildEnv is an in-memory timesystem.Environment.
//
// The zero value is not usable; construct with New.
type BuildEnv struct {
	mu            sync.RWMutex
	config        map[string]any
	registrations []Registration
	observers     []timesystem.Observer
	logger        timesystem.Logger
}

// Option configures a BuildEnv at construction time.
type Option func(*BuildEnv) error

// WithConfig merges entries into the environment's configuration mapping.
func WithConfig(config map[string]any) Option {
	return func(e *BuildEnv) error {
		for key, value := range config {
			e.config[key] = value
		}
		return nil
	}
}

// WithFeeders applies feeders to the configuration mapping, in order. Later
// feeders overwrite keys set by earlier ones.
func WithFeeders(feeders ...Feeder) Option {
	return func(e *BuildEnv) error {
		for _, f := range feeders {
			if err := f.Feed(e.config); err != nil {
				return fmt.Errorf("config feeder failed: %w", err)
			}
		}
		return nil
	}
}

// WithLogger sets the logger used for observer failures and diagnostics.
func WithLogger(logger timesystem.Logger) Option {
	return func(e *BuildEnv) error {
		if logger != nil {
			e.logger = logger
		}
		return nil
	}
}

// WithObserver registers an observer for registration events.
func WithObserver(observer timesystem.Observer) Option {
	return func(e *BuildEnv) error {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
		return nil
	}
}

// Feeder populates a configuration mapping from an external source. The
// feeders package provides YAML, TOML, and environment-variable feeders.
type Feeder interface {
	Feed(into map[string]any) error
}

// New creates a build environment and applies the given options.
func New(opts ...Option) (*BuildEnv, error) {
	env := &BuildEnv{
		config: make(map[string]any),
		logger: timesystem.NopLogger{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(env); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Tool records a dependency tool registration.
func (e *BuildEnv) Tool(name string) error {
	e.record(Registration{Kind: KindTool, Names: []string{name}})
	e.notify(timesystem.NewRegistrationEvent(timesystem.EventTypeToolRegistered, []string{name}))
	return nil
}

// AddLibrary records a library artifact registration.
func (e *BuildEnv) AddLibrary(libraries ...string) error {
	names := make([]string, len(libraries))
	copy(names, libraries)
	e.record(Registration{Kind: KindLibrary, Names: names})
	e.notify(timesystem.NewRegistrationEvent(timesystem.EventTypeLibraryRegistered, names))
	return nil
}

// ConfigValue returns the value bound to key in the configuration mapping.
func (e *BuildEnv) ConfigValue(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	value, ok := e.config[key]
	return value, ok
}

// SetConfig binds key to value in the configuration mapping, overwriting any
// previous binding.
func (e *BuildEnv) SetConfig(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.config[key] = value
}

// Registrations returns every recorded registration, in issue order.
func (e *BuildEnv) Registrations() []Registration {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Registration, len(e.registrations))
	copy(out, e.registrations)
	return out
}

// Tools returns the registered tool names, in issue order.
func (e *BuildEnv) Tools() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var names []string
	for _, reg := range e.registrations {
		if reg.Kind == KindTool {
			names = append(names, reg.Names...)
		}
	}
	return names
}

// Libraries returns the registered library names, flattened in issue order.
func (e *BuildEnv) Libraries() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var names []string
	for _, reg := range e.registrations {
		if reg.Kind == KindLibrary {
			names = append(names, reg.Names...)
		}
	}
	return names
}

func (e *BuildEnv) record(reg Registration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.registrations = append(e.registrations, reg)
}

// notify delivers an event to every observer. Observer errors are logged,
// never propagated: a failing observer must not abort a registration pass.
func (e *BuildEnv) notify(event timesystem.CloudEvent) {
	e.mu.RLock()
	observers := make([]timesystem.Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()

	ctx := context.Background()
	for _, observer := range observers {
		if err := observer.OnEvent(ctx, event); err != nil {
			e.logger.Error("observer failed to handle event",
				"observer", observer.ObserverID(),
				"eventType", event.Type(),
				"error", err)
		}
	}
}
