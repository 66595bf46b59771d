package main

import (
	"encoding/json"
	"os"

	"securereq/internal/analysis"
	"securereq/internal/compliance"

	"github.com/spf13/cobra"
)

var (
	analyzeTitle       string
	analyzeDescription string
	analyzeCriteria    string
	analyzeStandards   []string
	analyzeMap         bool
)

// analyzeCmd runs the deterministic template engine offline, without a
// database or an AI provider. Useful for inspecting what the fallback path
// produces for a given story.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the template analysis engine on a story and print JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		result := analysis.Analyze(analyzeTitle, analyzeDescription, analyzeCriteria)

		out := map[string]interface{}{
			"abuse_cases":           result.AbuseCases,
			"stride_threats":        result.StrideThreats,
			"security_requirements": result.SecurityRequirements,
			"risk_score":            result.RiskScore,
		}
		if analyzeMap {
			standards := analyzeStandards
			if len(standards) == 0 {
				standards = nil // all built-ins
			}
			out["compliance_mappings"] = compliance.MapRequirements(result.SecurityRequirements, standards, nil)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "story title")
	analyzeCmd.Flags().StringVar(&analyzeDescription, "description", "", "story description")
	analyzeCmd.Flags().StringVar(&analyzeCriteria, "criteria", "", "acceptance criteria")
	analyzeCmd.Flags().StringSliceVar(&analyzeStandards, "standards", nil, "standards to map against (default all built-in)")
	analyzeCmd.Flags().BoolVar(&analyzeMap, "map", false, "include compliance mappings")
	_ = analyzeCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(analyzeCmd)
}
