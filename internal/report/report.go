// Package report holds the in-memory result collection of one pipeline run
// and exports it to JSON, Markdown, and SARIF representations.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/judge"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/scoring"
)

// Report collects the results of a single pipeline run. It is owned by the
// run, appended to after each stage, and read-only for the exporters.
type Report struct {
	RunID            string                   `json:"run_id"`
	Timestamp        time.Time                `json:"timestamp"`
	Framework        string                   `json:"framework"`
	Model            string                   `json:"model"`
	GapAnalysis      *judge.AnalysisResult    `json:"gap_analysis,omitempty"`
	ComplianceScore  *scoring.ComplianceScore `json:"compliance_score,omitempty"`
	ExecutiveSummary string                   `json:"executive_summary,omitempty"`
	Remediation      *judge.RemediationResult `json:"remediation,omitempty"`
}

// NewReport starts an empty result collection for one run.
func NewReport(framework, model string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
		Framework: framework,
		Model:     model,
	}
}

// StageFileName builds the per-stage output file name,
// e.g. gap_analysis_20260826_143055.md.
func StageFileName(resultType string, t time.Time) string {
	return resultType + "_" + t.Format("20060102_150405") + ".md"
}
