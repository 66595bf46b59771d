package ai

import (
	"context"
	"log"

	"securereq/internal/analysis"
	"securereq/internal/compliance"
)

// Analyzer runs the primary analysis path against one configured provider.
type Analyzer struct {
	provider Provider
	model    string
}

func NewAnalyzer(provider Provider, model string) *Analyzer {
	if model == "" {
		model = provider.DefaultModel()
	}
	return &Analyzer{provider: provider, model: model}
}

// Model reports the model name recorded on snapshots this analyzer produces.
func (a *Analyzer) Model() string {
	return a.model
}

// Analyze asks the LLM for a full security analysis of the story and parses
// the response into the shared result shape. Any provider or parse error is
// returned to the caller, which falls back to the template engine.
func (a *Analyzer) Analyze(ctx context.Context, title, description, acceptanceCriteria string, custom []compliance.CustomStandard) (*analysis.Result, error) {
	user := buildUserPrompt(title, description, acceptanceCriteria, custom)

	text, err := a.provider.Chat(ctx, systemPrompt, user, a.model, defaultMaxTokens)
	if err != nil {
		return nil, err
	}

	result, err := parseResult(text)
	if err != nil {
		return nil, err
	}
	log.Printf("LLM analysis completed (%s): %d abuse cases, %d requirements",
		a.model, len(result.AbuseCases), len(result.SecurityRequirements))
	return result, nil
}
