// Package seed loads the template catalog's example queries into the vector
// store. Idempotent: keys derive from example text, so re-seeding overwrites.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
	"github.com/mkommar/schedparse/internal/domain/template"
)

// Service seeds template examples into the vector store.
type Service struct {
	embedder   Embedder
	examples   ExampleStore
	catalog    *template.Catalog
	dimensions int
	logger     *zap.Logger
}

// New creates a seed service. dimensions is the embedding vector size used
// when the index has to be created first.
func New(embedder Embedder, examples ExampleStore, catalog *template.Catalog, dimensions int, logger *zap.Logger) *Service {
	return &Service{
		embedder:   embedder,
		examples:   examples,
		catalog:    catalog,
		dimensions: dimensions,
		logger:     logger,
	}
}

// Seed embeds and upserts every example query in the catalog, creating the
// search index first if needed. Returns the number of examples written.
// Fails on the first error; a partial seed is safe to retry because upserts
// are keyed by content.
func (s *Service) Seed(ctx context.Context) (int, error) {
	if err := s.examples.EnsureIndex(ctx, s.dimensions); err != nil {
		return 0, fmt.Errorf("ensure index: %w", err)
	}

	count := 0
	for _, t := range s.catalog.All() {
		for _, query := range t.ExampleQueries {
			emb, err := s.embedder.Embed(ctx, query)
			if err != nil {
				return count, fmt.Errorf("embed example %q: %w", query, err)
			}

			err = s.examples.Upsert(ctx, domain.Example{
				TemplateID: t.ID,
				Content:    query,
				Vector:     emb.Embedding,
			})
			if err != nil {
				return count, fmt.Errorf("upsert example %q: %w", query, err)
			}
			count++
		}
	}

	s.logger.Info("seeded template examples", zap.Int("count", count))
	return count, nil
}
