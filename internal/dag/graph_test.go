package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// mustRegister registers tasks and fails the test on error.
func mustRegister(t *testing.T, b *Builder, tasks ...Task) {
	t.Helper()
	for _, task := range tasks {
		require.NoError(t, b.Register(task))
	}
}

// TestRegister_EmptyName tests that a nameless task is rejected
func TestRegister_EmptyName(t *testing.T) {
	t.Parallel()

	err := NewBuilder().Register(Task{})

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrInvalidGraph)
}

// TestRegister_DuplicateName tests that registering the same name twice fails
func TestRegister_DuplicateName(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.NoError(t, b.Register(Task{Name: "compile"}))

	err := b.Register(Task{Name: "compile"})

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrInvalidGraph)
}

// TestBuild_UnknownDependency tests that an edge to an unregistered task fails
func TestBuild_UnknownDependency(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b, Task{Name: "a", DependsOn: []string{"missing"}})

	_, err := b.Build()

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrInvalidGraph)
	assert.Contains(t, err.Error(), "missing")
}

// TestBuild_SelfLoop tests that a task depending on itself is rejected
func TestBuild_SelfLoop(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b, Task{Name: "a", DependsOn: []string{"a"}})

	_, err := b.Build()

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrInvalidGraph)
}

// TestBuild_Cycle tests that a dependency cycle is rejected with a witness path
func TestBuild_Cycle(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b,
		Task{Name: "a", DependsOn: []string{"b"}},
		Task{Name: "b", DependsOn: []string{"c"}},
		Task{Name: "c", DependsOn: []string{"a"}},
	)

	_, err := b.Build()

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrGraphCycle)
	assert.Contains(t, err.Error(), "->")
}

// TestBuild_FinalizerCycle tests that finalizer edges participate in cycle detection
func TestBuild_FinalizerCycle(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b,
		Task{Name: "owner", DependsOn: []string{"finalizer"}},
		Task{Name: "finalizer"},
	)
	b.Finalize("owner", "finalizer")

	_, err := b.Build()

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrGraphCycle)
}

// TestBuild_UnknownFinalizer tests that finalizer references are validated
func TestBuild_UnknownFinalizer(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b, Task{Name: "owner"})
	b.Finalize("owner", "missing")

	_, err := b.Build()

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrInvalidGraph)
}

// TestPlan_TopologicalOrder tests that dependencies precede dependents
func TestPlan_TopologicalOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b,
		Task{Name: "dist", DependsOn: []string{"jar"}},
		Task{Name: "jar", DependsOn: []string{"compile"}},
		Task{Name: "compile"},
	)
	g, err := b.Build()
	require.NoError(t, err)

	plan, err := g.Plan("dist")

	require.NoError(t, err)
	assert.Equal(t, []string{"compile", "jar", "dist"}, plan)
}

// TestPlan_Deterministic tests that independent tasks are scheduled in a
// stable lexical order across invocations
func TestPlan_Deterministic(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b,
		Task{Name: "zeta"},
		Task{Name: "alpha"},
		Task{Name: "mid", DependsOn: []string{"zeta", "alpha"}},
	)
	g, err := b.Build()
	require.NoError(t, err)

	first, err := g.Plan("mid")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		plan, err := g.Plan("mid")
		require.NoError(t, err)
		assert.Equal(t, first, plan)
	}
	assert.Equal(t, []string{"alpha", "zeta", "mid"}, first)
}

// TestPlan_OnlyNeededTasks tests that the plan covers targets plus
// transitive dependencies, not the whole graph
func TestPlan_OnlyNeededTasks(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b,
		Task{Name: "wanted", DependsOn: []string{"dep"}},
		Task{Name: "dep"},
		Task{Name: "unrelated"},
	)
	g, err := b.Build()
	require.NoError(t, err)

	plan, err := g.Plan("wanted")

	require.NoError(t, err)
	assert.Equal(t, []string{"dep", "wanted"}, plan)
}

// TestPlan_IncludesFinalizers tests that finalizers of planned tasks are
// scheduled after their owner
func TestPlan_IncludesFinalizers(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b,
		Task{Name: "install"},
		Task{Name: "manifest", DependsOn: []string{"install"}},
	)
	b.Finalize("install", "manifest")
	g, err := b.Build()
	require.NoError(t, err)

	plan, err := g.Plan("install")

	require.NoError(t, err)
	assert.Equal(t, []string{"install", "manifest"}, plan)
}

// TestPlan_UnknownTarget tests that planning an unregistered task fails
func TestPlan_UnknownTarget(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b, Task{Name: "a"})
	g, err := b.Build()
	require.NoError(t, err)

	_, err = g.Plan("nope")

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrTaskNotFound)
}

// TestTaskNames_RegistrationOrder tests that TaskNames preserves
// registration order
func TestTaskNames_RegistrationOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustRegister(t, b, Task{Name: "c"}, Task{Name: "a"}, Task{Name: "b"})
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, g.TaskNames())
}
