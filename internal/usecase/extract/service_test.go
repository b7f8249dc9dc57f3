package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
)

type stubCompleter struct {
	content string
	err     error
	gotReq  domain.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	s.gotReq = req
	if s.err != nil {
		return domain.CompletionResult{}, s.err
	}
	return domain.CompletionResult{Content: s.content}, nil
}

func TestExtract_PlainJSON(t *testing.T) {
	completer := &stubCompleter{content: `{"min": 2, "max": 5, "teams": "rivalry_games"}`}
	svc := New(completer, "anthropic/claude-opus-4.5", zap.NewNop())

	params, err := svc.Extract(context.Background(), "schedule rivalry games", 1, "")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if params.MinOr(0) != 2 || params.MaxOr(0) != 5 {
		t.Errorf("min/max = %d/%d, want 2/5", params.MinOr(0), params.MaxOr(0))
	}
	if params.Teams != "rivalry_games" {
		t.Errorf("teams = %q", params.Teams)
	}
	if completer.gotReq.Model != "anthropic/claude-opus-4.5" {
		t.Errorf("model = %q, want default", completer.gotReq.Model)
	}
	if !completer.gotReq.JSONResponse {
		t.Error("JSON response format not requested")
	}
	if !strings.Contains(completer.gotReq.UserPrompt, `Query: "schedule rivalry games"`) {
		t.Errorf("user prompt = %q", completer.gotReq.UserPrompt)
	}
	if !strings.Contains(completer.gotReq.UserPrompt, "Template Type: 1") {
		t.Errorf("user prompt = %q", completer.gotReq.UserPrompt)
	}
}

func TestExtract_ModelOverride(t *testing.T) {
	completer := &stubCompleter{content: `{}`}
	svc := New(completer, "default-model", zap.NewNop())

	if _, err := svc.Extract(context.Background(), "q", 1, "openai/gpt-4o"); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if completer.gotReq.Model != "openai/gpt-4o" {
		t.Errorf("model = %q, want override", completer.gotReq.Model)
	}
}

func TestExtract_FencedJSON(t *testing.T) {
	for name, content := range map[string]string{
		"json fence": "```json\n{\"max\": 0}\n```",
		"bare fence": "```\n{\"max\": 0}\n```",
		"padded":     "  ```json\n{\"max\": 0}\n```  ",
	} {
		t.Run(name, func(t *testing.T) {
			svc := New(&stubCompleter{content: content}, "m", zap.NewNop())

			params, err := svc.Extract(context.Background(), "don't schedule games", 1, "")
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if params.Max == nil || *params.Max != 0 {
				t.Errorf("max = %v, want explicit 0", params.Max)
			}
		})
	}
}

func TestExtract_EmptyContent(t *testing.T) {
	svc := New(&stubCompleter{content: "   "}, "m", zap.NewNop())

	params, err := svc.Extract(context.Background(), "q", 2, "")
	if err != nil {
		t.Fatalf("empty content must not error: %v", err)
	}
	if params.Min != nil || params.Max != nil || params.Teams != "" {
		t.Errorf("params = %+v, want empty", params)
	}
}

func TestExtract_MalformedJSON(t *testing.T) {
	svc := New(&stubCompleter{content: "sure, here are the parameters:"}, "m", zap.NewNop())

	_, err := svc.Extract(context.Background(), "q", 3, "")
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Errorf("err = %v, want ErrExtractionFailed", err)
	}
}

func TestExtract_CompleterErrorPassesThrough(t *testing.T) {
	svc := New(&stubCompleter{err: domain.ErrCompletionProviderError}, "m", zap.NewNop())

	_, err := svc.Extract(context.Background(), "q", 1, "")
	if !errors.Is(err, domain.ErrCompletionProviderError) {
		t.Errorf("err = %v, want provider error", err)
	}
}

func TestStripFences(t *testing.T) {
	if got := stripFences("```json\n{}\n```"); got != "{}" {
		t.Errorf("got %q", got)
	}
	if got := stripFences("{}"); got != "{}" {
		t.Errorf("got %q", got)
	}
}
