package application

import (
	"fmt"
	"path/filepath"

	"batchren/internal/domain"
)

// BuildPlan derives the full rename plan for a finalized batch. Each
// entry's target directory is its own parent, or destination when given.
// Pure; the filesystem is not consulted.
func BuildPlan(batch domain.Batch, scheme domain.Scheme, destination string) ([]RenamePlanItem, error) {
	if err := scheme.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScheme, err)
	}

	plan := make([]RenamePlanItem, 0, len(batch))
	for _, entry := range batch {
		newName, err := scheme.Render(entry.Path, entry.Index)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidScheme, err)
		}

		targetDir := destination
		if targetDir == "" {
			targetDir = filepath.Dir(entry.Path)
		}

		plan = append(plan, RenamePlanItem{
			Path:    entry.Path,
			NewName: newName,
			NewPath: filepath.Join(targetDir, newName),
			Index:   entry.Index,
		})
	}
	return plan, nil
}
