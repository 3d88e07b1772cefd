package timesystem

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errEnvBroken = errors.New("environment broken")

// mockEnvironment is a minimal Environment double recording calls in order.
type mockEnvironment struct {
	config  map[string]any
	calls   []string
	toolErr error
	libErr  error
}

func newMockEnvironment(config map[string]any) *mockEnvironment {
	return &mockEnvironment{config: config}
}

func (m *mockEnvironment) Tool(name string) error {
	if m.toolErr != nil {
		return m.toolErr
	}
	m.calls = append(m.calls, "tool:"+name)
	return nil
}

func (m *mockEnvironment) AddLibrary(libraries ...string) error {
	if m.libErr != nil {
		return m.libErr
	}
	m.calls = append(m.calls, "library:"+strings.Join(libraries, ","))
	return nil
}

func (m *mockEnvironment) ConfigValue(key string) (any, bool) {
	value, ok := m.config[key]
	return value, ok
}

func TestGenerateRegistersArtifactAndDependencies(t *testing.T) {
	env := newMockEnvironment(map[string]any{
		CfitsioLibsKey: []string{"cfitsio"},
	})

	err := New().Generate(env)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"library:timeSystem",
		"tool:st_facilitiesLib",
		"tool:st_streamLib",
		"tool:tipLib",
		"tool:st_appLib",
		"library:cfitsio",
	}, env.calls)
}

func TestGenerateDepsOnlySkipsArtifact(t *testing.T) {
	env := newMockEnvironment(map[string]any{
		CfitsioLibsKey: []string{"cfitsio"},
	})

	err := New().Generate(env, WithDepsOnly(true))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"tool:st_facilitiesLib",
		"tool:st_streamLib",
		"tool:tipLib",
		"tool:st_appLib",
		"library:cfitsio",
	}, env.calls)
}

func TestGenerateDepsOnlyFalseMatchesDefault(t *testing.T) {
	defaultEnv := newMockEnvironment(map[string]any{CfitsioLibsKey: []string{"cfitsio"}})
	explicitEnv := newMockEnvironment(map[string]any{CfitsioLibsKey: []string{"cfitsio"}})

	require.NoError(t, New().Generate(defaultEnv))
	require.NoError(t, New().Generate(explicitEnv, WithDepsOnly(false)))

	assert.Equal(t, defaultEnv.calls, explicitEnv.calls)
}

func TestGenerateThirdPartyGroupFollowsConfig(t *testing.T) {
	env := newMockEnvironment(map[string]any{
		CfitsioLibsKey: []string{"cfitsio", "curl", "z"},
	})

	require.NoError(t, New().Generate(env))

	assert.Equal(t, "library:cfitsio,curl,z", env.calls[len(env.calls)-1])
}

func TestGenerateNilEnvironment(t *testing.T) {
	err := New().Generate(nil)
	assert.ErrorIs(t, err, ErrNilEnvironment)
}

func TestGenerateMissingConfigKey(t *testing.T) {
	env := newMockEnvironment(map[string]any{})

	err := New().Generate(env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigKeyNotFound)
	assert.Contains(t, err.Error(), CfitsioLibsKey)
}

func TestGenerateEnvironmentToolErrorPropagates(t *testing.T) {
	env := newMockEnvironment(map[string]any{CfitsioLibsKey: []string{"cfitsio"}})
	env.toolErr = errEnvBroken

	err := New().Generate(env)
	assert.ErrorIs(t, err, errEnvBroken)
}

func TestGenerateEnvironmentLibraryErrorPropagates(t *testing.T) {
	env := newMockEnvironment(map[string]any{CfitsioLibsKey: []string{"cfitsio"}})
	env.libErr = errEnvBroken

	err := New().Generate(env)
	assert.ErrorIs(t, err, errEnvBroken)
}

func TestGenerateTwiceProducesIndependentSequences(t *testing.T) {
	env := newMockEnvironment(map[string]any{CfitsioLibsKey: []string{"cfitsio"}})
	tool := New()

	require.NoError(t, tool.Generate(env))
	first := make([]string, len(env.calls))
	copy(first, env.calls)

	require.NoError(t, tool.Generate(env))
	assert.Equal(t, append(first, first...), env.calls)
}

func TestExistsAlwaysTrue(t *testing.T) {
	tool := New()

	assert.True(t, tool.Exists(newMockEnvironment(nil)))
	assert.True(t, tool.Exists(nil))
}

func TestName(t *testing.T) {
	assert.Equal(t, "timeSystemLib", New().Name())
}

func TestDependenciesInLinkOrder(t *testing.T) {
	assert.Equal(t, []string{
		"st_facilitiesLib",
		"st_streamLib",
		"tipLib",
		"st_appLib",
	}, New().Dependencies())
}

func TestSpecIsFreshPerCall(t *testing.T) {
	tool := New()

	spec := tool.Spec()
	spec.Tools[0] = "mutated"

	assert.Equal(t, "st_facilitiesLib", tool.Spec().Tools[0])
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	tool := New(WithLogger(nil))
	assert.NotNil(t, tool.logger)
}
