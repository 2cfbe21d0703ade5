package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
)

// FileEntry is one file of a batch. Index is the file's stable position
// within the batch, assigned once at finalization and reused identically
// for preview and apply.
type FileEntry struct {
	Path  string
	Index int
}

// Batch is the ordered set of files selected for one rename operation.
type Batch []FileEntry

// Paths returns the original paths in batch order.
func (b Batch) Paths() []string {
	paths := make([]string, len(b))
	for i, e := range b {
		paths[i] = e.Path
	}
	return paths
}

// NewBatch finalizes a selection of paths into a batch, assigning indices
// in the given order.
func NewBatch(paths []string) Batch {
	batch := make(Batch, len(paths))
	for i, p := range paths {
		batch[i] = FileEntry{Path: p, Index: i}
	}
	return batch
}

// BatchFromDir finalizes a batch from the regular files of a directory,
// ordered by natural sort so "file2" precedes "file10" the way directory
// listings present them.
func BatchFromDir(dir string) (Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Slice(paths, func(i, j int) bool {
		return natural.Less(filepath.Base(paths[i]), filepath.Base(paths[j]))
	})

	return NewBatch(paths), nil
}
