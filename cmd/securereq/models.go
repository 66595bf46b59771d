package main

import (
	"fmt"
	"os"

	"securereq/internal/ai"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var modelsProvider string

// modelsCmd lists the models available from a configured provider. Only
// needs the provider's API key, not a database.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models for an AI provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		key := apiKeyFor(modelsProvider)
		provider, err := ai.NewProvider(cmd.Context(), modelsProvider, key)
		if err != nil {
			return err
		}

		lister, ok := provider.(ai.ModelLister)
		if !ok {
			return fmt.Errorf("provider %s does not support listing models", modelsProvider)
		}
		models, err := lister.ListModels(cmd.Context())
		if err != nil {
			return err
		}
		for _, m := range models {
			fmt.Println(m)
		}
		return nil
	},
}

func apiKeyFor(provider string) string {
	switch provider {
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

func init() {
	modelsCmd.Flags().StringVar(&modelsProvider, "provider", "gemini", "AI provider (gemini, openai, anthropic)")
	rootCmd.AddCommand(modelsCmd)
}
