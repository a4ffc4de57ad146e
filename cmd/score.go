package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/docloader"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/scoring"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/files"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/logger"
)

type ScoreOptions struct {
	Input string
	JSON  bool
}

var allScoreOptions ScoreOptions

var execExampleScore = `  # Re-score a previously saved gap analysis
  policy-judge score --input data/output/gap_analysis_20260826_143055.md`

var scoreCmd = &cobra.Command{
	Use:     "score -i /path/to/gap_analysis.md",
	Short:   "Recalculate the compliance score of a saved gap analysis",
	Example: execExampleScore,
	RunE: func(cmd *cobra.Command, args []string) error {
		if allScoreOptions.Input == "" {
			return fmt.Errorf("an input file is required")
		}

		input, err := files.ExpandPath(allScoreOptions.Input)
		if err != nil {
			return err
		}
		if err := files.ValidatePath(input); err != nil {
			return err
		}

		logger := logger.NewLogger(AppConfig, "core-score")
		loader := docloader.New(nil, logger)

		text, err := loader.ExtractText(input)
		if err != nil {
			return err
		}

		score := scoring.CalculateScore(text)

		if allScoreOptions.JSON {
			data, err := json.MarshalIndent(score, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Overall Compliance: %s\n", score.Percentage)
		fmt.Printf("Risk Level: %s\n", score.RiskLevel)
		fmt.Printf("Total Gaps Found: %d\n", score.TotalGaps)
		fmt.Printf("  Critical: %d\n", score.Breakdown.Critical)
		fmt.Printf("  High: %d\n", score.Breakdown.High)
		fmt.Printf("  Medium: %d\n", score.Breakdown.Medium)
		fmt.Printf("  Low: %d\n", score.Breakdown.Low)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVarP(&allScoreOptions.Input, "input", "i", "", "file with a saved gap analysis")
	scoreCmd.Flags().BoolVar(&allScoreOptions.JSON, "json", false, "print the score as JSON")
}
