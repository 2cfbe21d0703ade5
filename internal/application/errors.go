package application

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for common conditions
var (
	ErrInvalidScheme  = errors.New("invalid scheme")
	ErrConflictsExist = errors.New("conflicts exist")
	ErrEmptyBatch     = errors.New("empty batch")
)

// ErrorKind classifies why a rename could not happen.
type ErrorKind string

const (
	KindInvalidScheme        ErrorKind = "invalid_scheme"
	KindNameCollision        ErrorKind = "name_collision"
	KindInvalidCharacter     ErrorKind = "invalid_character"
	KindExistingFileConflict ErrorKind = "existing_file_conflict"
	KindSourceMissing        ErrorKind = "source_missing"
	KindPermissionDenied     ErrorKind = "permission_denied"
	KindFilesystemOther      ErrorKind = "filesystem_other"
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError blocks execution of a plan that still has conflicts.
type ConflictError struct {
	Duplicates int
	Invalid    int
	Existing   int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot apply: %d duplicate targets, %d invalid names, %d existing files",
		e.Duplicates, e.Invalid, e.Existing)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflictsExist
}

// ApplyError is a captured per-item failure from the apply stage.
type ApplyError struct {
	Kind    ErrorKind
	Message string
	Time    time.Time
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewApplyError timestamps a failure as it is captured.
func NewApplyError(kind ErrorKind, message string) *ApplyError {
	return &ApplyError{Kind: kind, Message: message, Time: time.Now()}
}

// ClassifyFSError maps a filesystem error to an ErrorKind at the apply
// boundary. Nothing escapes that boundary unclassified.
func ClassifyFSError(err error) ErrorKind {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return KindSourceMissing
	case errors.Is(err, os.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, os.ErrExist):
		return KindExistingFileConflict
	default:
		return KindFilesystemOther
	}
}
