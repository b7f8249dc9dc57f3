package extract

import (
	"context"

	"github.com/mkommar/schedparse/internal/domain"
)

// Completer performs the single extraction completion call.
type Completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error)
}
