package domain

import "errors"

var (
	// ErrInvalidQuery signals a missing or empty query.
	ErrInvalidQuery = errors.New("query is required")
	// ErrNoMatch signals that no example cleared the similarity threshold.
	ErrNoMatch = errors.New("no matching template found")
	// ErrExtractionFailed signals a malformed extraction model response.
	ErrExtractionFailed = errors.New("parameter extraction failed")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrCompletionProviderError signals a completion provider failure.
	ErrCompletionProviderError = errors.New("completion provider error")
)
