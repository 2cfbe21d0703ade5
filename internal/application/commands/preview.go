package commands

import (
	"context"
	"path/filepath"

	"batchren/internal/application"
	"batchren/internal/domain"
)

// DefaultPreviewCount is how many sample pairs a preview shows.
const DefaultPreviewCount = 5

// PreviewCommand produces a small ordered sample of (original, new) name
// pairs for live feedback while a scheme is being edited.
type PreviewCommand struct {
	Batch  domain.Batch
	Scheme domain.Scheme
	Count  int
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(batch domain.Batch, scheme domain.Scheme, count int) *PreviewCommand {
	if count <= 0 {
		count = DefaultPreviewCount
	}
	return &PreviewCommand{Batch: batch, Scheme: scheme, Count: count}
}

// Validate checks the scheme before any name is generated.
func (c *PreviewCommand) Validate() error {
	return c.Scheme.Validate()
}

// Execute maps the first Count batch entries through the scheme. The
// sample length is min(Count, len(Batch)); no side effects, safe to call
// on every parameter edit.
func (c *PreviewCommand) Execute(ctx context.Context) ([]application.PreviewPair, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	count := c.Count
	if count > len(c.Batch) {
		count = len(c.Batch)
	}

	pairs := make([]application.PreviewPair, 0, count)
	for _, entry := range c.Batch[:count] {
		newName, err := c.Scheme.Render(entry.Path, entry.Index)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, application.PreviewPair{
			OriginalName: filepath.Base(entry.Path),
			NewName:      newName,
		})
	}
	return pairs, nil
}
