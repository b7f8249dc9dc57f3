// Package classify decides which constraint template a free-text query
// belongs to, using embedding similarity against seeded examples.
package classify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
)

// Degraded-mode constants. When the similarity backend errors the pipeline
// still answers, pinned to the first template with reduced confidence.
const (
	fallbackTemplateID = 1
	fallbackConfidence = 0.75
	fallbackReason     = "fallback: similarity search unavailable"
)

// Service classifies queries against the seeded example set.
type Service struct {
	embedder  Embedder
	matcher   Matcher
	threshold float64
	topK      int
	logger    *zap.Logger
}

// New creates a classification service.
func New(embedder Embedder, matcher Matcher, threshold float64, topK int, logger *zap.Logger) *Service {
	return &Service{
		embedder:  embedder,
		matcher:   matcher,
		threshold: threshold,
		topK:      topK,
		logger:    logger,
	}
}

// Classify embeds the query and matches it against stored examples.
//
// A matcher failure degrades instead of erroring: the result carries the
// fallback template with Degraded set so callers can tell it apart from a
// confident match. An embedder failure is fatal, nothing can be matched
// without a vector. An empty candidate list returns domain.ErrNoMatch.
func (s *Service) Classify(ctx context.Context, query string) (domain.Classification, error) {
	emb, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("embed query: %w", err)
	}

	matches, err := s.matcher.MatchTemplates(ctx, emb.Embedding, s.threshold, s.topK)
	if err != nil {
		s.logger.Warn("similarity search unavailable, using fallback template",
			zap.Error(err),
			zap.Int("template_id", fallbackTemplateID))
		return domain.Classification{
			TemplateID:  fallbackTemplateID,
			Confidence:  fallbackConfidence,
			MatchReason: fallbackReason,
			Degraded:    true,
		}, nil
	}

	if len(matches) == 0 {
		return domain.Classification{}, domain.ErrNoMatch
	}

	best := matches[0]
	return domain.Classification{
		TemplateID:   best.TemplateID,
		Confidence:   domain.Round2(best.Similarity),
		MatchReason:  fmt.Sprintf("Semantic similarity: %.0f%%", best.Similarity*100),
		SourcePhrase: best.Content,
	}, nil
}
