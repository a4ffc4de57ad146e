// Package pipeline runs the sequential gap-analysis workflow:
// extract, analyze, score, summarize, remediate, export.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/docloader"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/judge"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/ollama"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/report"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/scoring"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/summary"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/config"
)

// Options select the documents and stages of one run.
type Options struct {
	PolicyPath      string
	ReferencePath   string
	WithRemediation bool
	WithSARIF       bool
}

// Pipeline owns the result collection of a single run. It is not safe for
// concurrent use and is not meant to be: every stage blocks on its
// collaborator and appends its result before the next stage starts.
type Pipeline struct {
	cfg      *config.Config
	loader   *docloader.Loader
	backend  *ollama.Client
	judge    *judge.Judge
	exporter *report.Exporter
	logger   hclog.Logger

	result *report.Report
}

// New wires the collaborators from the configuration. modelOverride, when
// non-empty, replaces the configured model identifier for this run.
func New(cfg *config.Config, logger hclog.Logger, modelOverride string) *Pipeline {
	backend := ollama.New(cfg, logger.Named("ollama"), modelOverride)

	searchDirs := []string{cfg.Output.InputDir, cfg.Output.ReferenceDir, "."}
	loader := docloader.New(searchDirs, logger.Named("docloader"))

	return &Pipeline{
		cfg:      cfg,
		loader:   loader,
		backend:  backend,
		judge:    judge.New(backend, cfg.Analysis.Framework, logger.Named("judge")),
		exporter: report.NewExporter(logger.Named("export")),
		logger:   logger,
	}
}

// Report returns the result collection of the last run.
func (p *Pipeline) Report() *report.Report {
	return p.result
}

// Run executes the pipeline. A document or backend failure aborts the
// remaining stages; results collected before the failure are still
// exported.
func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	p.result = report.NewReport(p.cfg.Analysis.Framework, p.backend.Model())

	policyText, err := p.loader.ExtractText(opts.PolicyPath)
	if err != nil {
		return fmt.Errorf("failed to load user policy: %w", err)
	}

	referenceText, err := p.loader.ExtractText(opts.ReferencePath)
	if err != nil {
		return fmt.Errorf("failed to load reference framework: %w", err)
	}

	if err := p.backend.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach generative backend (is Ollama running?): %w", err)
	}

	runErr := p.runStages(ctx, opts, policyText, referenceText)

	if p.result.GapAnalysis != nil {
		if exportErr := p.export(opts); exportErr != nil {
			if runErr == nil {
				runErr = exportErr
			} else {
				p.logger.Error("failed to export collected results", "error", exportErr)
			}
		}
	}

	p.printSummary()
	return runErr
}

// runStages performs analysis, scoring, summary, and remediation, stopping
// at the first failure.
func (p *Pipeline) runStages(ctx context.Context, opts Options, policyText, referenceText string) error {
	analysis, err := p.judge.AnalyzeGaps(ctx, policyText, referenceText)
	if err != nil {
		return err
	}
	p.result.GapAnalysis = analysis

	score := scoring.CalculateScore(analysis.Analysis)
	p.result.ComplianceScore = &score
	p.logScore(score)

	p.result.ExecutiveSummary = summary.Generate(analysis.Analysis, score)

	stagePath := filepath.Join(p.cfg.Output.Dir, report.StageFileName("gap_analysis", time.Now()))
	if err := p.exporter.SaveStageMarkdown(stagePath, "gap_analysis", analysis.Framework, analysis.ModelUsed, analysis.Analysis); err != nil {
		return err
	}

	if !opts.WithRemediation {
		return nil
	}

	remediation, err := p.judge.GenerateRemediation(ctx, policyText, analysis.Analysis)
	if err != nil {
		return err
	}
	p.result.Remediation = remediation

	stagePath = filepath.Join(p.cfg.Output.Dir, report.StageFileName("remediation", time.Now()))
	return p.exporter.SaveStageMarkdown(stagePath, "remediation", remediation.Framework, remediation.ModelUsed, remediation.Remediation)
}

// export writes the combined report in every requested representation plus
// the standalone executive summary.
func (p *Pipeline) export(opts Options) error {
	ts := time.Now().Format("20060102_150405")
	outDir := p.cfg.Output.Dir

	jsonPath := filepath.Join(outDir, "complete_report_"+ts+".json")
	if err := p.exporter.ExportJSON(p.result, jsonPath); err != nil {
		return err
	}

	mdPath := filepath.Join(outDir, "complete_report_"+ts+".md")
	if err := p.exporter.ExportMarkdown(p.result, mdPath, true); err != nil {
		return err
	}

	if opts.WithSARIF {
		sarifPath := filepath.Join(outDir, "gap_findings_"+ts+".sarif")
		if err := p.exporter.ExportSARIF(p.result, sarifPath); err != nil {
			return err
		}
	}

	if p.result.ExecutiveSummary != "" {
		summaryPath := filepath.Join(outDir, "executive_summary_"+ts+".md")
		if err := p.exporter.SaveExecutiveSummary(summaryPath, p.result.ExecutiveSummary); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) logScore(score scoring.ComplianceScore) {
	if !p.cfg.Verbose() {
		return
	}
	p.logger.Info("compliance score calculated",
		"score", score.Percentage,
		"risk", score.RiskLevel,
		"gaps", score.TotalGaps,
		"critical", score.Breakdown.Critical,
		"high", score.Breakdown.High,
		"medium", score.Breakdown.Medium,
		"low", score.Breakdown.Low,
	)
}

func (p *Pipeline) printSummary() {
	if p.result == nil || !p.cfg.Verbose() {
		return
	}
	p.logger.Info("analysis finished",
		"gap_analysis", p.result.GapAnalysis != nil,
		"remediation", p.result.Remediation != nil,
		"executive_summary", p.result.ExecutiveSummary != "",
		"output_dir", p.cfg.Output.Dir,
	)
}
