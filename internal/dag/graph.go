package dag

import (
	"sort"

	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// Builder accumulates task registrations during the configuration phase.
//
// Builder replaces the ambient task registry of general-purpose build tools
// with an explicit object: the wiring code receives a Builder, registers
// tasks and relationships, and hands the validated Graph to an executor.
type Builder struct {
	tasks      map[string]*Task
	order      []string          // registration order, for stable iteration
	finalizers map[string][]string // owner -> finalizer names
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		tasks:      make(map[string]*Task),
		finalizers: make(map[string][]string),
	}
}

// Register adds a task to the graph under construction.
// Registering an empty or duplicate name fails immediately.
func (b *Builder) Register(task Task) error {
	if task.Name == "" {
		return kiteerrors.Wrap(kiteerrors.ErrInvalidGraph, "task name is required")
	}
	if _, exists := b.tasks[task.Name]; exists {
		return kiteerrors.Wrapf(kiteerrors.ErrInvalidGraph, "duplicate task name %q", task.Name)
	}
	t := task
	b.tasks[task.Name] = &t
	b.order = append(b.order, task.Name)
	return nil
}

// Finalize declares that finalizer runs automatically after owner completes
// successfully. A finalizer is a trailing relationship, not a blocking
// precondition: tasks depending on owner do not wait for its finalizers.
func (b *Builder) Finalize(owner, finalizer string) {
	b.finalizers[owner] = append(b.finalizers[owner], finalizer)
}

// Build validates the accumulated registrations and returns an immutable
// Graph. It rejects edges referencing unknown tasks, self-loops and cycles
// (reported with a deterministic witness path).
func (b *Builder) Build() (*Graph, error) {
	g := &Graph{
		tasks:      b.tasks,
		names:      append([]string(nil), b.order...),
		finalizers: make(map[string][]string, len(b.finalizers)),
		dependents: make(map[string][]string),
	}

	for _, name := range g.names {
		task := g.tasks[name]
		for _, dep := range task.DependsOn {
			if dep == name {
				return nil, kiteerrors.Wrapf(kiteerrors.ErrInvalidGraph,
					"task %q depends on itself", name)
			}
			if _, ok := g.tasks[dep]; !ok {
				return nil, kiteerrors.Wrapf(kiteerrors.ErrInvalidGraph,
					"task %q depends on unknown task %q", name, dep)
			}
			g.dependents[dep] = append(g.dependents[dep], name)
		}
	}

	for owner, finals := range b.finalizers {
		if _, ok := g.tasks[owner]; !ok {
			return nil, kiteerrors.Wrapf(kiteerrors.ErrInvalidGraph,
				"finalizer declared for unknown task %q", owner)
		}
		for _, f := range finals {
			if _, ok := g.tasks[f]; !ok {
				return nil, kiteerrors.Wrapf(kiteerrors.ErrInvalidGraph,
					"unknown finalizer task %q for %q", f, owner)
			}
		}
		g.finalizers[owner] = append([]string(nil), finals...)
	}

	if cycle := g.findCycle(); cycle != nil {
		return nil, cycleError(cycle)
	}

	return g, nil
}

// Graph is an immutable, validated build task graph.
// It is safe for concurrent read access.
type Graph struct {
	tasks      map[string]*Task
	names      []string // registration order
	finalizers map[string][]string
	dependents map[string][]string
}

// Task returns a registered task by name.
func (g *Graph) Task(name string) (*Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// TaskNames returns all task names in registration order.
func (g *Graph) TaskNames() []string {
	return append([]string(nil), g.names...)
}

// Finalizers returns the finalizer task names declared for owner.
func (g *Graph) Finalizers(owner string) []string {
	return append([]string(nil), g.finalizers[owner]...)
}

// Plan returns the execution schedule for the given target tasks: the
// targets, their transitive dependencies, and the finalizers of every
// included task, in deterministic topological order (Kahn's algorithm with
// a lexicographically ordered ready set).
//
// Finalizer edges are scheduled as owner -> finalizer so a finalizer never
// runs before its owner, while tasks that merely depend on the owner are
// not ordered against the finalizer.
func (g *Graph) Plan(targets ...string) ([]string, error) {
	needed, err := g.collect(targets)
	if err != nil {
		return nil, err
	}

	// In-degree over the induced subgraph, including finalizer edges.
	indeg := make(map[string]int, len(needed))
	succ := make(map[string][]string, len(needed))
	for name := range needed {
		if _, ok := indeg[name]; !ok {
			indeg[name] = 0
		}
		for _, dep := range g.tasks[name].DependsOn {
			if _, ok := needed[dep]; ok {
				succ[dep] = append(succ[dep], name)
				indeg[name]++
			}
		}
	}
	for owner, finals := range g.finalizers {
		if _, ok := needed[owner]; !ok {
			continue
		}
		for _, f := range finals {
			succ[owner] = append(succ[owner], f)
			indeg[f]++
		}
	}

	var ready []string
	for name, d := range indeg {
		if d == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	plan := make([]string, 0, len(needed))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		plan = append(plan, name)

		changed := false
		for _, next := range succ[name] {
			indeg[next]--
			if indeg[next] == 0 {
				ready = append(ready, next)
				changed = true
			}
		}
		if changed {
			sort.Strings(ready)
		}
	}

	if len(plan) != len(needed) {
		// Build() rejected cycles, so this only triggers on a graph mutated
		// after construction, which the API does not allow.
		return nil, kiteerrors.Wrap(kiteerrors.ErrGraphCycle, "schedule incomplete")
	}

	return plan, nil
}

// collect resolves targets plus transitive dependencies and finalizers into
// the set of tasks to schedule.
func (g *Graph) collect(targets []string) (map[string]struct{}, error) {
	needed := make(map[string]struct{})

	var visit func(name string) error
	visit = func(name string) error {
		if _, ok := needed[name]; ok {
			return nil
		}
		task, ok := g.tasks[name]
		if !ok {
			return kiteerrors.Wrapf(kiteerrors.ErrTaskNotFound, "task %q", name)
		}
		needed[name] = struct{}{}
		for _, dep := range task.DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		for _, f := range g.finalizers[name] {
			if err := visit(f); err != nil {
				return err
			}
		}
		return nil
	}

	for _, target := range targets {
		if err := visit(target); err != nil {
			return nil, err
		}
	}
	return needed, nil
}

// findCycle performs a deterministic DFS over task names to extract one
// cycle path, or returns nil when the graph is acyclic. Finalizer edges
// participate, so a finalizer transitively depending on its owner's
// dependents is rejected.
func (g *Graph) findCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, len(g.tasks))
	parent := make(map[string]string, len(g.tasks))

	edges := func(name string) []string {
		out := append([]string(nil), g.tasks[name].DependsOn...)
		// Owner -> finalizer is an ordering edge too; walk it reversed so a
		// cycle through a finalizer is found from the finalizer side.
		for owner, finals := range g.finalizers {
			for _, f := range finals {
				if f == name {
					out = append(out, owner)
				}
			}
		}
		sort.Strings(out)
		return out
	}

	var cycle []string
	var dfs func(name string) bool
	dfs = func(name string) bool {
		color[name] = gray
		for _, dep := range edges(name) {
			switch color[dep] {
			case white:
				parent[dep] = name
				if dfs(dep) {
					return true
				}
			case gray:
				cycle = append(cycle, dep)
				cur := name
				for cur != "" && cur != dep {
					cycle = append(cycle, cur)
					cur = parent[cur]
				}
				cycle = append(cycle, dep)
				return true
			}
		}
		color[name] = black
		return false
	}

	names := append([]string(nil), g.names...)
	sort.Strings(names)
	for _, name := range names {
		if color[name] == white && dfs(name) {
			break
		}
	}

	if len(cycle) == 0 {
		return nil
	}

	// The walk recorded the path backwards; reverse it to forward order.
	out := make([]string, len(cycle))
	for i, name := range cycle {
		out[len(cycle)-1-i] = name
	}
	return out
}

// cycleError formats a cycle witness into an ErrGraphCycle error.
func cycleError(path []string) error {
	msg := "cycle"
	if len(path) > 0 {
		msg = path[0]
		for _, name := range path[1:] {
			msg += " -> " + name
		}
	}
	return kiteerrors.Wrapf(kiteerrors.ErrGraphCycle, "%s", msg)
}
