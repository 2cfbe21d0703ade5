package application

import (
	"fmt"

	"batchren/internal/domain"
)

// ValidateBatch checks that a finalized batch is usable: non-empty, with
// unique source paths and unique indices.
func ValidateBatch(batch domain.Batch) error {
	if len(batch) == 0 {
		return &ValidationError{
			Field:   "batch",
			Message: "at least one file is required",
		}
	}

	seenPath := make(map[string]bool, len(batch))
	seenIdx := make(map[int]bool, len(batch))
	for _, entry := range batch {
		if seenPath[entry.Path] {
			return &ValidationError{
				Field:   "batch",
				Message: fmt.Sprintf("duplicate source path: %s", entry.Path),
			}
		}
		seenPath[entry.Path] = true

		if seenIdx[entry.Index] {
			return &ValidationError{
				Field:   "batch",
				Message: fmt.Sprintf("duplicate index: %d", entry.Index),
			}
		}
		seenIdx[entry.Index] = true
	}

	return nil
}

// DuplicateTargets returns every NewPath shared by more than one plan
// item. A non-empty result must block apply.
func DuplicateTargets(plan []RenamePlanItem) []string {
	counts := make(map[string]int, len(plan))
	for _, item := range plan {
		counts[item.NewPath]++
	}

	var dups []string
	seen := make(map[string]bool)
	for _, item := range plan {
		if counts[item.NewPath] > 1 && !seen[item.NewPath] {
			seen[item.NewPath] = true
			dups = append(dups, item.NewPath)
		}
	}
	return dups
}
