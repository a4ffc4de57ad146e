package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/files"
)

const markdownFooter = "*Generated by Policy Gap Analysis Tool*\n"

// Exporter serializes a report to disk. It never mutates the report.
type Exporter struct {
	logger hclog.Logger
}

func NewExporter(logger hclog.Logger) *Exporter {
	return &Exporter{logger: logger}
}

type jsonExport struct {
	ExportTimestamp string `json:"export_timestamp"`
	*Report
}

// ExportJSON writes the full result collection with an added export
// timestamp. All nested fields are preserved without loss.
func (e *Exporter) ExportJSON(r *Report, path string) error {
	payload := jsonExport{
		ExportTimestamp: time.Now().Format(time.RFC3339),
		Report:          r,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}
	if err := files.WriteJSONFile(path, data); err != nil {
		return fmt.Errorf("error exporting JSON report: %w", err)
	}

	e.logger.Info("JSON report exported", "path", path)
	return nil
}

// ExportMarkdown writes the narrative report. Sections appear in fixed
// order; the compliance-score block is emitted only when a score is present
// and includeScore is set. Stored free text is appended verbatim.
func (e *Exporter) ExportMarkdown(r *Report, path string, includeScore bool) error {
	var b strings.Builder

	b.WriteString("# Policy Gap Analysis Report\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", time.Now().Format("2006-01-02 15:04:05"))
	if r.Framework != "" {
		fmt.Fprintf(&b, "**Framework:** %s\n", r.Framework)
	}
	if r.Model != "" {
		fmt.Fprintf(&b, "**AI Model:** %s\n", r.Model)
	}
	b.WriteString("\n---\n\n")

	if includeScore && r.ComplianceScore != nil {
		score := r.ComplianceScore
		b.WriteString("## Compliance Score\n\n")
		fmt.Fprintf(&b, "- **Overall Compliance:** %s\n", score.Percentage)
		fmt.Fprintf(&b, "- **Risk Level:** %s\n", score.RiskLevel)
		fmt.Fprintf(&b, "- **Total Gaps:** %d\n", score.TotalGaps)
		fmt.Fprintf(&b, "  - Critical: %d\n", score.Breakdown.Critical)
		fmt.Fprintf(&b, "  - High: %d\n", score.Breakdown.High)
		fmt.Fprintf(&b, "  - Medium: %d\n", score.Breakdown.Medium)
		fmt.Fprintf(&b, "  - Low: %d\n\n", score.Breakdown.Low)
		b.WriteString("---\n\n")
	}

	if r.GapAnalysis != nil {
		b.WriteString("## Gap Analysis\n\n")
		b.WriteString(r.GapAnalysis.Analysis)
		b.WriteString("\n\n")
	}

	if r.Remediation != nil {
		b.WriteString("## Remediation Plan\n\n")
		b.WriteString(r.Remediation.Remediation)
		b.WriteString("\n\n")
	}

	b.WriteString("\n---\n\n")
	b.WriteString(markdownFooter)

	if err := files.WriteTextFile(path, b.String()); err != nil {
		return fmt.Errorf("error exporting Markdown report: %w", err)
	}

	e.logger.Info("Markdown report exported", "path", path)
	return nil
}

// SaveStageMarkdown writes a single stage result (gap analysis or
// remediation) with the standard header.
func (e *Exporter) SaveStageMarkdown(path, resultType, framework, model, body string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", stageTitle(resultType))
	fmt.Fprintf(&b, "**Generated:** %s  \n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Framework:** %s  \n", framework)
	fmt.Fprintf(&b, "**Model Used:** %s\n", model)
	b.WriteString("\n---\n\n")
	b.WriteString(body)

	if err := files.WriteTextFile(path, b.String()); err != nil {
		return fmt.Errorf("error saving %s result: %w", resultType, err)
	}

	e.logger.Info("stage result saved", "type", resultType, "path", path)
	return nil
}

// SaveExecutiveSummary writes the standalone executive summary file.
func (e *Exporter) SaveExecutiveSummary(path, summaryText string) error {
	if err := files.WriteTextFile(path, summaryText); err != nil {
		return fmt.Errorf("error saving executive summary: %w", err)
	}
	e.logger.Info("executive summary saved", "path", path)
	return nil
}

// stageTitle turns a result type like "gap_analysis" into "Gap Analysis".
func stageTitle(resultType string) string {
	words := strings.Split(resultType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
