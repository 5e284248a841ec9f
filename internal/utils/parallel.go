package utils

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work run by RunParallel.
type Task func(ctx context.Context) error

// ErrTaskPanicked wraps a panic raised inside a task.
var ErrTaskPanicked = errors.New("task panicked")

// RunParallel executes tasks concurrently and waits for all of them. The
// first error cancels the shared context and is returned.
func RunParallel(ctx context.Context, tasks ...Task) error {
	return RunParallelLimit(ctx, 0, tasks...)
}

// RunParallelLimit is RunParallel with at most limit tasks in flight. A
// limit of zero or less means no limit.
func RunParallelLimit(ctx context.Context, limit int, tasks ...Task) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, task := range tasks {
		g.Go(func() error { return safeRun(ctx, task) })
	}
	return g.Wait()
}

// safeRun turns a panic into an error. Tasks run on their own goroutines,
// out of reach of any recover further up the request's stack.
func safeRun(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return task(ctx)
}
