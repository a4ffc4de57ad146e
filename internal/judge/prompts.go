package judge

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/gap_analysis.txt
	gapAnalysisPrompt string
	//go:embed prompts/remediation.txt
	remediationPrompt string
)

func buildGapAnalysisPrompt(frameworkName, userPolicy, referenceStandard string) string {
	replacer := strings.NewReplacer(
		"{{FRAMEWORK_NAME}}", frameworkName,
		"{{USER_POLICY}}", userPolicy,
		"{{REFERENCE_STANDARD}}", referenceStandard,
	)
	return replacer.Replace(gapAnalysisPrompt)
}

func buildRemediationPrompt(frameworkName, userPolicy, gapAnalysis string) string {
	replacer := strings.NewReplacer(
		"{{FRAMEWORK_NAME}}", frameworkName,
		"{{USER_POLICY}}", userPolicy,
		"{{GAP_ANALYSIS}}", gapAnalysis,
	)
	return replacer.Replace(remediationPrompt)
}
