package application

// RenamePlanItem is one computed original→new pair of a plan. Items are
// derived by BuildPlan, never hand-constructed.
type RenamePlanItem struct {
	Path    string // original path
	NewName string
	NewPath string
	Index   int
}

// PreviewPair is one (original, new) name pair of a preview sample.
type PreviewPair struct {
	OriginalName string
	NewName      string
}

// DuplicateGroup records every batch member whose computed name collides
// with another's.
type DuplicateGroup struct {
	NewName string
	Paths   []string
}

// InvalidName records a computed name the target filesystem rejects.
type InvalidName struct {
	Path    string
	NewName string
	Reason  string
}

// ExistingCollision records a target path already occupied by a file that
// is not one of the batch's own sources.
type ExistingCollision struct {
	Path    string
	NewName string
	NewPath string
}

// ConflictReport lists every condition blocking safe execution of a plan.
type ConflictReport struct {
	Duplicates   []DuplicateGroup
	InvalidNames []InvalidName
	Existing     []ExistingCollision
}

// Empty reports whether the plan is safe to apply.
func (r *ConflictReport) Empty() bool {
	return len(r.Duplicates) == 0 && len(r.InvalidNames) == 0 && len(r.Existing) == 0
}

// ApplyResult is the outcome of one attempted rename. Err is nil on
// success. Results from a parallel run arrive unordered; callers that
// care re-sort by Index.
type ApplyResult struct {
	Path    string
	NewPath string
	Index   int
	Err     *ApplyError
}

// Progress carries aggregate apply progress.
type Progress struct {
	Completed int
	Total     int
}

// Summary aggregates a finished apply run.
type Summary struct {
	Succeeded int
	Failed    int
	ByKind    map[ErrorKind]int
}

// Summarize folds a result set into final counts.
func Summarize(results []ApplyResult) Summary {
	s := Summary{ByKind: make(map[ErrorKind]int)}
	for _, r := range results {
		if r.Err == nil {
			s.Succeeded++
			continue
		}
		s.Failed++
		s.ByKind[r.Err.Kind]++
	}
	return s
}
