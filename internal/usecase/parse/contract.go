package parse

import (
	"context"

	"github.com/mkommar/schedparse/internal/domain"
)

// Classifier resolves a query to a template classification.
type Classifier interface {
	Classify(ctx context.Context, query string) (domain.Classification, error)
}

// Extractor pulls template parameters out of a query.
type Extractor interface {
	Extract(ctx context.Context, query string, templateID int, model string) (domain.ParameterSet, error)
}
