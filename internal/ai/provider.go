// Package ai implements the primary, LLM-backed analysis path. Every
// provider returns the same payload shape the template fallback produces, so
// persistence and compliance mapping never know which path ran.
package ai

import "context"

// Provider is a minimal chat-completion abstraction over the supported LLM
// backends.
type Provider interface {
	// Chat sends one system+user exchange and returns the raw response text.
	Chat(ctx context.Context, system, user, model string, maxTokens int) (string, error)
	// DefaultModel is used when no model is configured.
	DefaultModel() string
}

// ModelLister is implemented by providers that can enumerate their available
// models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

const defaultMaxTokens = 4096
