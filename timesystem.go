// Package timesystem declares the build dependencies of the timeSystem
// library to an external build orchestrator.
//
// The package is the Go rendition of a SCons-style tool module: the
// orchestrator hands in an Environment, and the declarator registers the
// timeSystem output artifact plus the tools and third-party libraries it
// links against. The orchestrator owns dependency-graph resolution and
// artifact production; this package only issues registrations, in the
// order the linker needs them.
//
// Basic usage:
//
//	tool := timesystem.New()
//	if err := tool.Generate(env); err != nil {
//		log.Fatal(err)
//	}
//
// Registering only the transitive dependencies, without the timeSystem
// artifact itself:
//
//	err := tool.Generate(env, timesystem.WithDepsOnly(true))
package timesystem

// Fixed identifiers used when registering with the build environment.
const (
	// LibraryName is the output library artifact this tool registers.
	LibraryName = "timeSystem"

	// ToolName is the name orchestrators use to look this tool up.
	ToolName = "timeSystemLib"

	// CfitsioLibsKey is the configuration key holding the third-party
	// library group to link against.
	CfitsioLibsKey = "cfitsioLibs"
)

// Dependency tool names, registered in link order.
const (
	ToolStFacilities = "st_facilitiesLib"
	ToolStStream     = "st_streamLib"
	ToolTip          = "tipLib"
	ToolStApp        = "st_appLib"
)

// Tool represents a registrable build-tool module. It mirrors the
// generate/exists contract a SCons-style orchestrator expects from a tool:
// Generate issues the tool's registrations against the environment, and
// Exists reports whether the tool can run at all.
type Tool interface {
	// Name returns the unique identifier orchestrators resolve this tool by.
	Name() string

	// Generate registers the tool's artifacts and dependencies with the
	// environment. All effects flow through env; the tool itself holds no
	// state between calls.
	Generate(env Environment, opts ...GenerateOption) error

	// Exists reports whether the tool's preconditions are satisfied.
	Exists(env Environment) bool
}

// LibrarySpec bundles a library's name with its declared dependencies.
// It is produced fresh on each request and never cached.
type LibrarySpec struct {
	// Name is the output library artifact.
	Name string

	// Tools are the dependency tools, in registration (link) order.
	Tools []string

	// ConfigKey names the configuration entry holding additional
	// third-party libraries.
	ConfigKey string
}

// DependencyTools returns the fixed dependency tool names in the order they
// must be registered. The slice is a fresh copy; callers may modify it.
func DependencyTools() []string {
	return []string{ToolStFacilities, ToolStStream, ToolTip, ToolStApp}
}
