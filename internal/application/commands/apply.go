package commands

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"batchren/internal/application"
	"batchren/internal/ports"
)

// ApplyCommand executes a validated plan against the filesystem. Every
// item is attempted; per-item failures are captured as results and never
// abort the batch. Already-completed renames are not rolled back.
type ApplyCommand struct {
	fs ports.Filesystem

	Plan        []application.RenamePlanItem
	Destination string

	// Workers bounds move parallelism. Moves are mutually independent
	// once the destination directory exists, so results arrive unordered.
	Workers int

	// OnProgress, when set, observes aggregate progress after each
	// attempted item. It may be called from multiple goroutines.
	OnProgress func(application.Progress)
}

// NewApplyCommand creates a new ApplyCommand
func NewApplyCommand(fs ports.Filesystem, plan []application.RenamePlanItem, destination string, workers int) *ApplyCommand {
	if workers <= 0 {
		workers = 1
	}
	return &ApplyCommand{
		fs:          fs,
		Plan:        plan,
		Destination: destination,
		Workers:     workers,
	}
}

// Validate refuses a plan whose targets are not unique. This is a cheap
// in-memory re-scan, not a filesystem re-validation; the caller gates
// execution on an empty conflict report.
func (c *ApplyCommand) Validate() error {
	if dups := application.DuplicateTargets(c.Plan); len(dups) > 0 {
		return &application.ConflictError{Duplicates: len(dups)}
	}
	if c.Workers <= 0 {
		return &application.ValidationError{
			Field:   "workers",
			Message: "worker count must be positive",
		}
	}
	return nil
}

// Execute runs the plan and streams one ApplyResult per attempted item.
// The destination directory, if any, is created before the first move.
// Cancelling ctx suppresses items that have not started; in-flight moves
// always run to completion so no file is left half-moved. The channel
// closes once every dispatched item has been attempted.
func (c *ApplyCommand) Execute(ctx context.Context) (<-chan application.ApplyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Destination != "" {
		if err := c.fs.MkdirAll(c.Destination); err != nil {
			return nil, fmt.Errorf("failed to create destination folder: %w", err)
		}
	}

	results := make(chan application.ApplyResult, len(c.Plan))
	total := len(c.Plan)
	var completed atomic.Int64

	sem := make(chan struct{}, c.Workers)
	var wg sync.WaitGroup

	go func() {
		defer close(results)
		for _, item := range c.Plan {
			select {
			case <-ctx.Done():
				// Pending items are suppressed, not failed.
				wg.Wait()
				return
			case sem <- struct{}{}:
			}

			wg.Add(1)
			go func(item application.RenamePlanItem) {
				defer wg.Done()
				defer func() { <-sem }()

				results <- c.moveOne(item)

				done := completed.Add(1)
				if c.OnProgress != nil {
					c.OnProgress(application.Progress{Completed: int(done), Total: total})
				}
			}(item)
		}
		wg.Wait()
	}()

	return results, nil
}

// moveOne attempts a single rename and converts any failure into a
// captured result. Source existence is re-checked because state may have
// changed since validation.
func (c *ApplyCommand) moveOne(item application.RenamePlanItem) application.ApplyResult {
	result := application.ApplyResult{
		Path:    item.Path,
		NewPath: item.NewPath,
		Index:   item.Index,
	}

	if item.NewPath == item.Path {
		return result
	}

	exists, err := c.fs.Exists(item.Path)
	if err != nil {
		result.Err = application.NewApplyError(application.ClassifyFSError(err), err.Error())
		return result
	}
	if !exists {
		result.Err = application.NewApplyError(application.KindSourceMissing,
			fmt.Sprintf("source no longer exists: %s", item.Path))
		return result
	}

	if err := c.fs.Move(item.Path, item.NewPath); err != nil {
		result.Err = application.NewApplyError(application.ClassifyFSError(err), err.Error())
	}
	return result
}
