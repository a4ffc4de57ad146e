package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/pipeline"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/logger"
)

type AnalyseOptions struct {
	PolicyPath    string
	ReferencePath string
	Batch         bool
	Model         string
	SARIF         bool
	NoRemediation bool
}

var allAnalyseOptions AnalyseOptions

var execExampleAnalyse = `  # Analyse a policy against a reference framework without prompts
  policy-judge analyse --policy data/input/user_policy.pdf --reference data/reference/SAMPLE_NIST_REFERENCE.md --batch

  # Same run with a different model and a SARIF export of the findings
  policy-judge analyse --policy policy.pdf --reference nist.md --batch --model mistral --sarif`

var analyseCmd = &cobra.Command{
	Use:     "analyse --policy /path/to/policy.pdf --reference /path/to/framework.md [--batch]",
	Short:   "Run the gap analysis and remediation pipeline",
	Example: execExampleAnalyse,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logger.NewLogger(AppConfig, "core-analyse")

		opts := pipeline.Options{
			PolicyPath:      allAnalyseOptions.PolicyPath,
			ReferencePath:   allAnalyseOptions.ReferencePath,
			WithRemediation: !allAnalyseOptions.NoRemediation,
			WithSARIF:       allAnalyseOptions.SARIF,
		}

		if !allAnalyseOptions.Batch {
			if err := fillOptionsInteractively(&opts); err != nil {
				return err
			}
		} else if opts.PolicyPath == "" || opts.ReferencePath == "" {
			return fmt.Errorf("batch mode requires both --policy and --reference")
		}

		logger.Info("analyse called",
			"framework", AppConfig.Analysis.Framework,
			"model", modelForRun(),
		)

		p := pipeline.New(AppConfig, logger, allAnalyseOptions.Model)
		return p.Run(cmd.Context(), opts)
	},
}

// fillOptionsInteractively prompts for the document paths and optional
// stages, defaulting paths into the configured input directories.
func fillOptionsInteractively(opts *pipeline.Options) error {
	fmt.Println("Policy Gap Analysis Tool")
	fmt.Printf("Model: %s | Framework: %s\n\n", modelForRun(), AppConfig.Analysis.Framework)

	if opts.PolicyPath == "" {
		fmt.Println("Step 1: Load your organization's policy (supported formats: PDF, TXT, MD)")
		path, err := promptString("Enter path to your policy file",
			filepath.Join(AppConfig.Output.InputDir, "user_policy.pdf"))
		if err != nil {
			return err
		}
		opts.PolicyPath = path
	}

	if opts.ReferencePath == "" {
		fmt.Println("\nStep 2: Load the reference standard (supported formats: PDF, TXT, MD)")
		path, err := promptString("Enter path to the reference framework file",
			filepath.Join(AppConfig.Output.ReferenceDir, "SAMPLE_NIST_REFERENCE.md"))
		if err != nil {
			return err
		}
		opts.ReferencePath = path
	}

	proceed, err := promptConfirm("\nProceed with gap analysis?", true)
	if err != nil {
		return err
	}
	if !proceed {
		return fmt.Errorf("aborted by user")
	}

	opts.WithRemediation, err = promptConfirm("Generate a remediation plan after the analysis?", true)
	return err
}

func modelForRun() string {
	if allAnalyseOptions.Model != "" {
		return allAnalyseOptions.Model
	}
	return AppConfig.Ollama.Model
}

func init() {
	rootCmd.AddCommand(analyseCmd)

	analyseCmd.Flags().StringVarP(&allAnalyseOptions.PolicyPath, "policy", "p", "", "path to the organization's policy document")
	analyseCmd.Flags().StringVarP(&allAnalyseOptions.ReferencePath, "reference", "r", "", "path to the reference framework document")
	analyseCmd.Flags().BoolVar(&allAnalyseOptions.Batch, "batch", false, "run non-interactively")
	analyseCmd.Flags().StringVarP(&allAnalyseOptions.Model, "model", "m", "", "override the configured model identifier")
	analyseCmd.Flags().BoolVar(&allAnalyseOptions.SARIF, "sarif", false, "additionally export the gap findings as SARIF")
	analyseCmd.Flags().BoolVar(&allAnalyseOptions.NoRemediation, "no-remediation", false, "skip the remediation stage")
}
