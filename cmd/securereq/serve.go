package main

import (
	"context"
	"fmt"
	"log"

	"securereq/internal/ai"
	"securereq/internal/config"
	"securereq/internal/database"
	"securereq/internal/handlers"
	"securereq/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SecureReq API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		database.Init(cfg.DBDSN)

		if cfg.LLMProvider != "" {
			provider, err := ai.NewProvider(context.Background(), cfg.LLMProvider, cfg.APIKey(cfg.LLMProvider))
			if err != nil {
				log.Printf("AI provider unavailable, analyses will use template fallback: %v", err)
			} else {
				handlers.Analyzer = ai.NewAnalyzer(provider, cfg.DefaultModel)
				log.Printf("AI analysis enabled (%s/%s)", cfg.LLMProvider, handlers.Analyzer.Model())
			}
		} else {
			log.Println("no LLM_PROVIDER configured, analyses will use template fallback")
		}

		r := server.NewRouter(cfg)

		addr := fmt.Sprintf(":%s", cfg.ServerPort)
		log.Printf("starting server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
