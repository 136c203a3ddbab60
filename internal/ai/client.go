// Package ai wraps the LLM providers behind a single prompt-in/text-out
// capability. The OpenAI implementation constrains output to the
// renegotiation JSON schema; the Gemini implementation returns free text.
// Either way the caller must treat the response as untrusted text and parse
// defensively.
package ai

import (
	"context"
	"fmt"

	"github.com/techfinance-lab/techfinance/internal/core/config"
)

// Client generates a text response for a prompt.
type Client interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// New selects the concrete provider from configuration. A missing credential
// for the selected provider fails here, at startup, not inside a request.
func New(ctx context.Context, cfg config.AIConfig) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	case "gemini":
		return NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}
