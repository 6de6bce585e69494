package dag

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// Executor runs a planned schedule of build tasks.
//
// Independent tasks within the same wave run concurrently; the first failure
// cancels the remaining tasks of the wave and aborts the invocation. There
// is no retry and no partial-success mode.
type Executor struct {
	logger zerolog.Logger
}

// NewExecutor creates an Executor logging through the given logger.
func NewExecutor(logger zerolog.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run executes the given targets and everything they require, in an order
// consistent with the graph. It returns the per-task results in schedule
// order along with the first task error, if any.
func (e *Executor) Run(ctx context.Context, g *Graph, targets ...string) ([]TaskResult, error) {
	plan, err := g.Plan(targets...)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := e.logger.With().Str("run_id", runID).Logger()
	logger.Info().Strs("targets", targets).Int("tasks", len(plan)).Msg("starting build invocation")

	preds := schedulePredecessors(g, plan)

	results := make(map[string]*TaskResult, len(plan))
	for _, name := range plan {
		results[name] = &TaskResult{Name: name, State: StatePending}
	}

	done := make(map[string]bool, len(plan))
	var firstErr error

	for len(done) < len(plan) && firstErr == nil {
		wave := readyTasks(plan, preds, done, results)
		if len(wave) == 0 {
			// Plan is a valid topological order, so an empty wave means every
			// remaining task is blocked by a failure recorded above.
			break
		}

		var mu sync.Mutex
		group, groupCtx := errgroup.WithContext(ctx)
		for _, name := range wave {
			task, _ := g.Task(name)
			result := results[name]
			group.Go(func() error {
				err := e.runTask(groupCtx, logger, task, result)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
				return err
			})
		}
		_ = group.Wait()

		for _, name := range wave {
			done[name] = true
		}
	}

	for _, result := range results {
		if result.State == StatePending {
			result.State = StateSkipped
		}
	}

	out := make([]TaskResult, 0, len(plan))
	for _, name := range plan {
		out = append(out, *results[name])
	}

	if firstErr != nil {
		logger.Error().Err(firstErr).Msg("build invocation failed")
		return out, firstErr
	}
	logger.Info().Msg("build invocation succeeded")
	return out, nil
}

// runTask executes a single task, applying the up-to-date check first.
func (e *Executor) runTask(ctx context.Context, logger zerolog.Logger, task *Task, result *TaskResult) error {
	taskLogger := logger.With().Str("task", task.Name).Logger()

	if upToDate(task) {
		taskLogger.Debug().Msg("task outputs up-to-date, skipping")
		result.State = StateUpToDate
		return nil
	}

	if err := ctx.Err(); err != nil {
		result.State = StateSkipped
		return err
	}

	result.State = StateRunning
	taskLogger.Debug().Msg("task started")
	start := time.Now()

	var err error
	if task.Action != nil {
		err = task.Action(ctx)
	}
	result.Duration = time.Since(start)

	if err != nil {
		result.State = StateFailed
		result.Err = err
		taskLogger.Error().Err(err).Dur("duration", result.Duration).Msg("task failed")
		return kiteerrors.Wrapf(kiteerrors.ErrTaskFailed, "%s: %v", task.Name, err)
	}

	result.State = StateSucceeded
	taskLogger.Info().Dur("duration", result.Duration).Msg("task completed")
	return nil
}

// schedulePredecessors returns, for each planned task, the planned tasks that
// must complete before it: declared dependencies plus the owner of any
// finalizer relationship.
func schedulePredecessors(g *Graph, plan []string) map[string][]string {
	inPlan := make(map[string]bool, len(plan))
	for _, name := range plan {
		inPlan[name] = true
	}

	preds := make(map[string][]string, len(plan))
	for _, name := range plan {
		task, _ := g.Task(name)
		for _, dep := range task.DependsOn {
			if inPlan[dep] {
				preds[name] = append(preds[name], dep)
			}
		}
	}
	for _, owner := range plan {
		for _, f := range g.Finalizers(owner) {
			if inPlan[f] {
				preds[f] = append(preds[f], owner)
			}
		}
	}
	return preds
}

// readyTasks returns planned tasks whose predecessors all completed without
// failure, preserving plan order.
func readyTasks(plan []string, preds map[string][]string, done map[string]bool, results map[string]*TaskResult) []string {
	var ready []string
	for _, name := range plan {
		if done[name] {
			continue
		}
		ok := true
		for _, pred := range preds[name] {
			if !done[pred] || results[pred].State == StateFailed || results[pred].State == StateSkipped {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, name)
		}
	}
	return ready
}

// upToDate reports whether a task can be skipped: both inputs and outputs
// must be declared, every output must exist, and no input may be newer than
// the oldest output. Tasks without declared inputs always run.
func upToDate(task *Task) bool {
	if len(task.Inputs) == 0 || len(task.Outputs) == 0 {
		return false
	}

	oldestOutput := time.Time{}
	for _, out := range task.Outputs {
		info, err := os.Stat(out)
		if err != nil {
			return false
		}
		if oldestOutput.IsZero() || info.ModTime().Before(oldestOutput) {
			oldestOutput = info.ModTime()
		}
	}

	for _, in := range task.Inputs {
		info, err := os.Stat(in)
		if err != nil {
			return false
		}
		if info.ModTime().After(oldestOutput) {
			return false
		}
	}
	return true
}
