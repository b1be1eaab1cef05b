package llm

import (
	"context"
	"fmt"
	"strings"
)

// ChatRequest is a single-shot role-tagged completion request. Handlers get
// exactly one attempt; there is no retry or backoff at this layer.
type ChatRequest struct {
	System      string
	User        string
	Temperature float32
}

type ChatClient interface {
	// Complete returns the full response text in one round trip.
	Complete(ctx context.Context, req ChatRequest) (string, error)

	// Stream consumes the token stream, invoking onDelta for every chunk of
	// generated text, and returns the accumulated response.
	Stream(ctx context.Context, req ChatRequest, onDelta func(chunk string)) (string, error)
}

// NewChatClient builds a provider-specific client. DashScope exposes an
// OpenAI-compatible endpoint, so it shares the OpenAI client under a custom
// base URL.
func NewChatClient(provider, apiKey, model string) (ChatClient, error) {
	switch strings.ToLower(provider) {
	case "", "dashscope":
		return NewDashScopeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", provider)
	}
}
