package genai

import (
	"context"
	"fmt"

	"github.com/devsync-community/devsync-backend/config"
)

// GenerateRequest carries a single prompt to a generation backend. Fast
// selects the backend's lighter model where one is configured.
type GenerateRequest struct {
	Prompt string
	Fast   bool
}

// Client defines the standard interface for any generation backend.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// NewFromConfig builds the backend selected by GENAI_BACKEND. A missing
// credential is a construction-time failure.
func NewFromConfig(cfg config.GenAIConfig) (Client, error) {
	switch cfg.Backend {
	case "openai":
		return NewOpenAIClient(cfg)
	case "gemini":
		return NewGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unknown generation backend %q", cfg.Backend)
	}
}
