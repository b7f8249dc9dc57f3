package openai

import (
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mkommar/schedparse/internal/domain"
)

func TestParseAPIError_RequestErrorWithDetail(t *testing.T) {
	err := parseAPIError(&openai.RequestError{
		HTTPStatusCode: 402,
		Body:           []byte(`{"detail": "insufficient credits"}`),
	}, "completion", domain.ErrCompletionProviderError)

	if !errors.Is(err, domain.ErrCompletionProviderError) {
		t.Errorf("not wrapped with sentinel: %v", err)
	}
	if !strings.Contains(err.Error(), "insufficient credits") {
		t.Errorf("detail missing: %v", err)
	}
	if !strings.Contains(err.Error(), "402") {
		t.Errorf("status missing: %v", err)
	}
}

func TestParseAPIError_APIError(t *testing.T) {
	err := parseAPIError(&openai.APIError{
		HTTPStatusCode: 429,
		Message:        "rate limited",
	}, "embedding", domain.ErrEmbeddingProviderError)

	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("not wrapped with sentinel: %v", err)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("message missing: %v", err)
	}
}

func TestParseAPIError_Opaque(t *testing.T) {
	err := parseAPIError(errors.New("dial tcp: timeout"), "embedding", domain.ErrEmbeddingProviderError)

	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("not wrapped with sentinel: %v", err)
	}
}

func TestExtractDetail(t *testing.T) {
	if got := extractDetail([]byte(`{"detail": "boom"}`)); got != "boom" {
		t.Errorf("got %q", got)
	}
	if got := extractDetail([]byte(`not json`)); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
