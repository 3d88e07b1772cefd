package timesystem

import (
	"fmt"
	"sort"
	"sync"
)

// ToolRegistry maps tool names to Tool implementations, the way a build
// orchestrator resolves a tool name from a build script into the module
// that performs its registrations. Registration order is not significant
// here; link order comes from each tool's own Generate sequence.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool under its own Name. Registering a second tool under
// an already-taken name fails with ErrToolAlreadyRegistered.
func (r *ToolRegistry) Register(tool Tool) error {
	if tool == nil {
		return ErrToolNil
	}
	name := tool.Name()
	if name == "" {
		return ErrToolNameEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %q", ErrToolAlreadyRegistered, name)
	}
	r.tools[name] = tool
	return nil
}

// Lookup resolves a tool by name. Missing names fail with ErrToolNotFound.
func (r *ToolRegistry) Lookup(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return tool, nil
}

// Names returns the registered tool names, sorted.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
