package classify

import (
	"context"

	"github.com/mkommar/schedparse/internal/domain"
)

// Embedder vectorizes the incoming query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Matcher searches stored example vectors for the nearest templates.
type Matcher interface {
	MatchTemplates(ctx context.Context, vector []float32, threshold float64, limit int) ([]domain.ExampleMatch, error)
}
