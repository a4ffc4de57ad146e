package report

import (
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/scoring"
)

const (
	sarifToolName = "policy-judge"
	sarifToolURI  = "https://github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis"
)

// ExportSARIF emits the matched severity markers as a SARIF run, one result
// per marker. Findings are document level, so results carry no locations.
func (e *Exporter) ExportSARIF(r *Report, path string) error {
	if r.GapAnalysis == nil {
		return fmt.Errorf("no gap analysis present, nothing to export")
	}

	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("error creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)

	for _, severity := range []scoring.Severity{
		scoring.SeverityCritical, scoring.SeverityHigh, scoring.SeverityMedium, scoring.SeverityLow,
	} {
		run.AddRule(ruleID(severity)).
			WithDescription(fmt.Sprintf("Policy gap marker of %s severity identified by the gap analysis.", severity))
	}

	for _, hit := range scoring.MarkerHits(r.GapAnalysis.Analysis) {
		run.CreateResultForRule(ruleID(hit.Severity)).
			WithLevel(hit.Severity.SARIFLevel()).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf(
				"Gap marker %q (%s severity) matched %d time(s) in the %s gap analysis.",
				hit.Marker, hit.Severity, hit.Count, r.Framework)))
	}

	sarifReport.AddRun(run)

	if err := sarifReport.WriteFile(path); err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}

	e.logger.Info("SARIF report exported", "path", path)
	return nil
}

func ruleID(s scoring.Severity) string {
	return "policy-gap/" + s.String()
}
