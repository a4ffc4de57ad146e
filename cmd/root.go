package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/cmd/version"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "policy-judge [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Policy-judge analyses security policies against reference frameworks.",
		Long: `Policy-judge compares an organization's security policy against a reference
	cybersecurity framework using a locally hosted generative model, scores the
	identified gaps, and exports the results as Markdown, JSON, and SARIF reports.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
