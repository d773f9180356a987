// Package llm is the optional downstream consumer of saved templates: it
// proposes values for unfilled variables and drafts content from a filled
// template. The extraction engine itself never calls into this package.
package llm

import (
	"context"
	"fmt"

	"stencil/internal/model"
)

// Provider is a chat-completion backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt and returns the completion text
	Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error)
}

// CompleteRequest is one completion call
type CompleteRequest struct {
	System    string
	Prompt    string
	Model     string // Overrides the configured model when set
	MaxTokens int
}

// CompleteResponse is the completion result
type CompleteResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts the application config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// NewProvider creates the configured provider
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
