package ai

import (
	"context"
	"fmt"
)

func NewProvider(ctx context.Context, providerName, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %s", providerName)
	}
	switch providerName {
	case "gemini":
		return NewGeminiProvider(ctx, apiKey)
	case "openai":
		return NewOpenAIProvider(apiKey), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}
