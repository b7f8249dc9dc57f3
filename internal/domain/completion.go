package domain

import "context"

// Completer is the chat-completion contract used by parameter extraction.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// CompletionRequest is a single-turn system+user completion call.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	JSONResponse bool // constrain the response to a single JSON object
}

// CompletionResult carries the raw response text and token usage.
type CompletionResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
