// Package parse orchestrates the three-stage query pipeline: classify,
// extract, validate, then render the structured constraint sentence.
package parse

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
	"github.com/mkommar/schedparse/internal/domain/feasibility"
	"github.com/mkommar/schedparse/internal/domain/template"
)

// Service runs the full parse pipeline for one query.
type Service struct {
	classifier Classifier
	extractor  Extractor
	catalog    *template.Catalog
	logger     *zap.Logger
}

// New creates a parse service.
func New(classifier Classifier, extractor Extractor, catalog *template.Catalog, logger *zap.Logger) *Service {
	return &Service{
		classifier: classifier,
		extractor:  extractor,
		catalog:    catalog,
		logger:     logger,
	}
}

// Parse turns a free-text scheduling request into a structured constraint
// record. model optionally overrides the extraction model for this request.
func (s *Service) Parse(ctx context.Context, query, model string) (domain.ParseResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ParseResult{}, fmt.Errorf("empty query: %w", domain.ErrInvalidQuery)
	}

	classification, err := s.classifier.Classify(ctx, query)
	if err != nil {
		return domain.ParseResult{}, fmt.Errorf("classify: %w", err)
	}

	params, err := s.extractor.Extract(ctx, query, classification.TemplateID, model)
	if err != nil {
		return domain.ParseResult{}, fmt.Errorf("extract: %w", err)
	}

	verdict := feasibility.Validate(classification.TemplateID, params)
	sentence := s.catalog.Render(classification.TemplateID, params)

	name := "Unknown"
	if t, ok := s.catalog.ByID(classification.TemplateID); ok {
		name = t.Name
	}

	s.logger.Info("query parsed",
		zap.Int("template_id", classification.TemplateID),
		zap.Float64("confidence", classification.Confidence),
		zap.Bool("degraded", classification.Degraded),
		zap.Bool("feasible", verdict.Feasible))

	return domain.ParseResult{
		TemplateID:         classification.TemplateID,
		TemplateName:       name,
		Confidence:         classification.Confidence,
		ConstraintSentence: sentence,
		Parameters:         params,
		Feasibility:        verdict,
		MatchReason:        classification.MatchReason,
		OriginalQuery:      classification.SourcePhrase,
	}, nil
}
