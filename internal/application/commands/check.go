package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"batchren/internal/application"
	"batchren/internal/domain"
	"batchren/internal/ports"
)

// CheckResult contains the computed plan and everything blocking it.
type CheckResult struct {
	Plan   []application.RenamePlanItem
	Report *application.ConflictReport
}

// CheckCommand computes the full rename plan and reports duplicate
// targets, invalid names, and collisions with existing files. It never
// mutates the filesystem; an empty report is the precondition for apply.
type CheckCommand struct {
	fs ports.Filesystem

	Batch       domain.Batch
	Scheme      domain.Scheme
	Destination string
	Rules       domain.Rules
}

// NewCheckCommand creates a new CheckCommand. Destination may be empty,
// meaning each file stays in its own directory.
func NewCheckCommand(fs ports.Filesystem, batch domain.Batch, scheme domain.Scheme, destination string) *CheckCommand {
	return &CheckCommand{
		fs:          fs,
		Batch:       batch,
		Scheme:      scheme,
		Destination: destination,
		Rules:       domain.HostRules(),
	}
}

// Validate checks the batch and scheme before the plan is computed.
func (c *CheckCommand) Validate() error {
	if err := application.ValidateBatch(c.Batch); err != nil {
		return err
	}
	return c.Scheme.Validate()
}

// Execute builds the plan and the conflict report. Idempotent: unchanged
// inputs and filesystem state yield an identical report.
func (c *CheckCommand) Execute(ctx context.Context) (*CheckResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	plan, err := application.BuildPlan(c.Batch, c.Scheme, c.Destination)
	if err != nil {
		return nil, err
	}

	report := &application.ConflictReport{}

	// Duplicates: any group of plan items sharing a new name, all members.
	byName := make(map[string][]string, len(plan))
	for _, item := range plan {
		byName[item.NewName] = append(byName[item.NewName], item.Path)
	}
	for _, item := range plan {
		paths := byName[item.NewName]
		if len(paths) > 1 {
			report.Duplicates = append(report.Duplicates, application.DuplicateGroup{
				NewName: item.NewName,
				Paths:   paths,
			})
			delete(byName, item.NewName)
		}
	}

	// Invalid names per the target filesystem's rules.
	for _, item := range plan {
		if reason := c.Rules.Check(item.NewName); reason != "" {
			report.InvalidNames = append(report.InvalidNames, application.InvalidName{
				Path:    item.Path,
				NewName: item.NewName,
				Reason:  reason,
			})
		}
	}

	// Existing files at the target that are not the batch's own sources.
	sources := make(map[string]bool, len(plan))
	for _, item := range plan {
		sources[filepath.Clean(item.Path)] = true
	}
	for _, item := range plan {
		target := filepath.Clean(item.NewPath)
		if sources[target] {
			continue
		}
		exists, err := c.fs.Exists(target)
		if err != nil {
			return nil, fmt.Errorf("failed to check target %s: %w", target, err)
		}
		if exists {
			report.Existing = append(report.Existing, application.ExistingCollision{
				Path:    item.Path,
				NewName: item.NewName,
				NewPath: item.NewPath,
			})
		}
	}

	return &CheckResult{Plan: plan, Report: report}, nil
}
