package ports

// Filesystem defines the filesystem operations the rename engine needs.
// Validation only reads; apply mutates.
type Filesystem interface {
	// Exists reports whether a path exists at all (file or directory).
	Exists(path string) (bool, error)

	// Move renames a file, crossing filesystem boundaries if it must.
	// It fails rather than overwrite an existing target.
	Move(oldPath, newPath string) error

	// MkdirAll creates a directory and any missing parents. Idempotent.
	MkdirAll(dir string) error
}
