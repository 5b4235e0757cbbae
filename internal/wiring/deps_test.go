package wiring_test

import (
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casgen/internal/app"
	"go.trai.ch/casgen/internal/core/domain"
	_ "go.trai.ch/casgen/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// type used in Dep[T]. Several nodes provide interfaces from the shared ports
	// package, so the inferred "ports" dependency never matches a node ID.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestComponentsResolve(t *testing.T) {
	t.Setenv("OPENCAS_GENERATOR_KMSG", filepath.Join(t.TempDir(), "kmsg"))
	t.Setenv("OPENCAS_CONFIG_FILE", "/nonexistent/opencas.conf")

	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	defer func() { _ = components.Close() }()

	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)

	err = components.App.Inspect(app.Options{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigOpenFailed.Error())
}
