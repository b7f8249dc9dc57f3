// Package extract pulls structured constraint parameters out of a free-text
// query with a one-shot JSON-constrained chat completion.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
)

const systemPrompt = `You are a sports scheduling constraint parameter extractor. Extract parameters from the user's query based on the template type.

Template 1: Game Scheduling
- min: minimum number of games (default: 1)
- max: maximum number of games (default: 999)
- teams: team group/category (e.g., "rivalry_games", "all_teams")
- rounds: round group (e.g., "weekend_rounds", "all_rounds")
- networks: network name (e.g., "ESPN", "FOX")
- venues: venue group (e.g., "all_venues", "outdoor_stadiums")

Template 2: Time Slot Constraints
- min: minimum games per time slot
- max: maximum games per time slot
- time_slots: time slot group (e.g., "primetime_slots")
- networks: network name

Template 3: Team-specific Constraints
- teams: specific team or team group
- min: minimum constraint value
- max: maximum constraint value
- condition: specific condition (e.g., "consecutive_home_games")

Handle negations: "don't", "no", "avoid" → set max=0

Return ONLY valid JSON with extracted parameters. Use null for missing values.`

// Service extracts template parameters from queries.
type Service struct {
	completer    Completer
	defaultModel string
	logger       *zap.Logger
}

// New creates an extraction service. defaultModel is used when the caller
// does not override the model per request.
func New(completer Completer, defaultModel string, logger *zap.Logger) *Service {
	return &Service{completer: completer, defaultModel: defaultModel, logger: logger}
}

// Extract asks the completion model for the query's parameters against the
// given template's schema. An empty response means no parameters, not an
// error; a response that is not valid JSON fails with ErrExtractionFailed.
func (s *Service) Extract(ctx context.Context, query string, templateID int, model string) (domain.ParameterSet, error) {
	if model == "" {
		model = s.defaultModel
	}

	result, err := s.completer.Complete(ctx, domain.CompletionRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		UserPrompt:   fmt.Sprintf("Query: \"%s\"\nTemplate Type: %d", query, templateID),
		JSONResponse: true,
	})
	if err != nil {
		return domain.ParameterSet{}, fmt.Errorf("extraction completion: %w", err)
	}

	s.logger.Debug("extraction completed",
		zap.String("model", model),
		zap.Int("template_id", templateID),
		zap.Int("total_tokens", result.TotalTokens))

	content := stripFences(result.Content)
	if content == "" {
		return domain.ParameterSet{}, nil
	}

	var params domain.ParameterSet
	if err := json.Unmarshal([]byte(content), &params); err != nil {
		return domain.ParameterSet{}, fmt.Errorf("unmarshal parameters: %v: %w", err, domain.ErrExtractionFailed)
	}

	return params, nil
}

// stripFences removes a markdown code fence wrapper, which some models emit
// even when asked for bare JSON.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = content[7:]
	} else if strings.HasPrefix(content, "```") {
		content = content[3:]
	}
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
