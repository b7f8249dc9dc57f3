package seed

import (
	"context"

	"github.com/mkommar/schedparse/internal/domain"
)

// Embedder vectorizes example query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// ExampleStore persists example embeddings for similarity search.
type ExampleStore interface {
	EnsureIndex(ctx context.Context, dim int) error
	Upsert(ctx context.Context, ex domain.Example) error
}
