package timesystem

import (
	"fmt"
)

// TimeSystem is the declarator for the timeSystem library. It registers the
// output artifact, the fixed dependency tools, and the cfitsio library group
// with whatever Environment it is handed. The type is stateless apart from
// its logger: every Generate call produces an independent registration
// sequence with the same content.
type TimeSystem struct {
	logger Logger
}

// New creates the timeSystem declarator tool.
func New(opts ...Option) *TimeSystem {
	t := &TimeSystem{
		logger: NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Name returns the identifier orchestrators resolve this tool by.
func (t *TimeSystem) Name() string {
	return ToolName
}

// Spec returns the library's declaration: its artifact name, its dependency
// tools in link order, and the configuration key for the third-party group.
// The spec is built fresh on every call.
func (t *TimeSystem) Spec() LibrarySpec {
	return LibrarySpec{
		Name:      LibraryName,
		Tools:     DependencyTools(),
		ConfigKey: CfitsioLibsKey,
	}
}

// Dependencies returns the names of the tools this library depends on, in
// registration order.
func (t *TimeSystem) Dependencies() []string {
	return DependencyTools()
}

// Generate registers the timeSystem library with the build environment.
//
// Unless WithDepsOnly(true) is given, the timeSystem output artifact is
// registered first. The four dependency tools are then registered one per
// call, in link order, followed by the third-party library group read from
// the environment's configuration mapping under CfitsioLibsKey.
//
// Errors from the environment propagate unmodified apart from wrapping; a
// missing configuration key surfaces as ErrConfigKeyNotFound.
func (t *TimeSystem) Generate(env Environment, opts ...GenerateOption) error {
	if env == nil {
		return ErrNilEnvironment
	}

	cfg := newGenerateConfig(opts)
	spec := t.Spec()

	if !cfg.depsOnly {
		if err := env.AddLibrary(spec.Name); err != nil {
			return fmt.Errorf("failed to register library %q: %w", spec.Name, err)
		}
		t.logger.Debug("registered output library", "library", spec.Name)
	}

	for _, name := range spec.Tools {
		if err := env.Tool(name); err != nil {
			return fmt.Errorf("failed to register tool %q: %w", name, err)
		}
		t.logger.Debug("registered dependency tool", "tool", name)
	}

	libs, err := ConfigStrings(env, spec.ConfigKey)
	if err != nil {
		return fmt.Errorf("failed to read third-party libraries: %w", err)
	}
	if err := env.AddLibrary(libs...); err != nil {
		return fmt.Errorf("failed to register third-party libraries: %w", err)
	}
	t.logger.Debug("registered third-party libraries", "key", spec.ConfigKey, "libraries", libs)

	return nil
}

// Exists reports whether the tool's preconditions are satisfied. The
// timeSystem tool has none, so it reports true for every environment.
func (t *TimeSystem) Exists(env Environment) bool {
	return true
}
