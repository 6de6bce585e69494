// Package dag provides the build task graph for kitebuild.
//
// Tasks are registered during the configuration phase through a Builder,
// which validates the dependency relation and produces an immutable Graph.
// An Executor walks the graph in topological order at execution time; the
// two phases never overlap. Mutual exclusion between tasks is structural:
// tasks either have declared dependencies or touch disjoint output
// directories, so the executor uses no locking beyond the schedule itself.
package dag

import (
	"context"
	"time"
)

// Action is the deferred file-system effect of a task. Actions run at most
// once per build invocation and must honor ctx cancellation on blocking work.
type Action func(ctx context.Context) error

// Task is a named unit of deferred work in the build graph.
//
// Inputs and Outputs declare the file paths the action reads and produces.
// They drive the executor's up-to-date check: a task with both declared is
// skipped when every output is newer than every input. Tasks whose outputs
// depend on configuration rather than files should leave Inputs empty so
// they always run.
type Task struct {
	// Name uniquely identifies the task within a graph.
	Name string

	// Description is a one-line human-readable summary shown by the CLI.
	Description string

	// DependsOn lists the names of tasks that must complete successfully
	// before this task may run.
	DependsOn []string

	// Inputs are file paths the action reads, for incremental detection.
	Inputs []string

	// Outputs are file paths the action produces, for incremental detection.
	Outputs []string

	// Action performs the task's work. A nil Action marks a lifecycle
	// placeholder that succeeds without doing anything.
	Action Action
}

// State is the execution state of a task within a single build invocation.
type State string

// Task execution states.
const (
	// StatePending means the task has not been scheduled yet.
	StatePending State = "pending"

	// StateRunning means the task's action is currently executing.
	StateRunning State = "running"

	// StateSucceeded means the task's action completed without error.
	StateSucceeded State = "succeeded"

	// StateUpToDate means the task was skipped because its declared outputs
	// are newer than its declared inputs.
	StateUpToDate State = "up-to-date"

	// StateFailed means the task's action returned an error.
	StateFailed State = "failed"

	// StateSkipped means the task never ran because the invocation failed
	// before it became ready.
	StateSkipped State = "skipped"
)

// TaskResult records the outcome of one task in a build invocation.
type TaskResult struct {
	// Name is the task name.
	Name string

	// State is the final state of the task.
	State State

	// Duration is the wall-clock time the action took. Zero for tasks that
	// did not run.
	Duration time.Duration

	// Err is the action error for failed tasks, nil otherwise.
	Err error
}
