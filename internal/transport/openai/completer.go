package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
	"github.com/mkommar/schedparse/internal/metrics"
)

// Completer is a chat-completion provider using an OpenAI-compatible API
// (OpenRouter in the default configuration).
type Completer struct {
	client *openai.Client
	logger *zap.Logger
}

// CompleterConfig holds the completion provider settings.
type CompleterConfig struct {
	APIKey  string
	BaseURL string
	Logger  *zap.Logger
}

// NewCompleter creates an OpenAI-compatible chat completion provider.
func NewCompleter(cfg *CompleterConfig) *Completer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Completer{
		client: openai.NewClientWithConfig(clientCfg),
		logger: cfg.Logger,
	}
}

// Complete implements domain.Completer. One call, one attempt: the caller
// decides what a malformed response means, not this layer.
func (c *Completer) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: 1.0,
	}
	if req.JSONResponse {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)

	duration := time.Since(start)

	if err != nil {
		metrics.CompletionRequestsTotal.WithLabelValues(req.Model, "error").Inc()
		metrics.CompletionErrorsTotal.WithLabelValues(req.Model, "api_error").Inc()
		return domain.CompletionResult{}, parseAPIError(err, "completion", domain.ErrCompletionProviderError)
	}

	if len(resp.Choices) == 0 {
		metrics.CompletionRequestsTotal.WithLabelValues(req.Model, "error").Inc()
		metrics.CompletionErrorsTotal.WithLabelValues(req.Model, "empty_response").Inc()
		return domain.CompletionResult{}, fmt.Errorf("empty completion response: %w", domain.ErrCompletionProviderError)
	}

	metrics.CompletionRequestsTotal.WithLabelValues(req.Model, "success").Inc()
	metrics.CompletionRequestDuration.WithLabelValues(req.Model).Observe(duration.Seconds())

	usage := resp.Usage
	if usage.TotalTokens > 0 {
		metrics.CompletionTokensTotal.WithLabelValues(req.Model, "prompt").Add(float64(usage.PromptTokens))
		metrics.CompletionTokensTotal.WithLabelValues(req.Model, "completion").Add(float64(usage.CompletionTokens))
		metrics.CompletionTokensTotal.WithLabelValues(req.Model, "total").Add(float64(usage.TotalTokens))
	}

	return domain.CompletionResult{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Completer) HealthCheck(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}
