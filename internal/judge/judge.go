// Package judge drives the generative backend through the two fixed prompt
// templates: gap analysis against a reference framework, then remediation.
package judge

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Backend is the text-in/text-out contract the judge needs from the
// generative model.
type Backend interface {
	Model() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisResult is produced once per run and immutable after creation.
type AnalysisResult struct {
	Framework string `json:"framework"`
	Analysis  string `json:"analysis"`
	ModelUsed string `json:"model_used"`
}

// RemediationResult depends on a prior AnalysisResult.
type RemediationResult struct {
	Framework   string `json:"framework"`
	Remediation string `json:"remediation"`
	ModelUsed   string `json:"model_used"`
}

type Judge struct {
	backend   Backend
	framework string
	logger    hclog.Logger
}

func New(backend Backend, frameworkName string, logger hclog.Logger) *Judge {
	return &Judge{
		backend:   backend,
		framework: frameworkName,
		logger:    logger,
	}
}

// AnalyzeGaps compares the organization's policy against the reference
// standard with one blocking backend request.
func (j *Judge) AnalyzeGaps(ctx context.Context, userPolicyText, referenceStandardText string) (*AnalysisResult, error) {
	j.logger.Info("starting gap analysis", "framework", j.framework, "model", j.backend.Model())

	prompt := buildGapAnalysisPrompt(j.framework, userPolicyText, referenceStandardText)
	analysisText, err := j.backend.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("gap analysis failed: %w", err)
	}

	j.logger.Info("gap analysis complete", "chars", len(analysisText))
	return &AnalysisResult{
		Framework: j.framework,
		Analysis:  analysisText,
		ModelUsed: j.backend.Model(),
	}, nil
}

// GenerateRemediation drafts remediation recommendations from a prior gap
// analysis.
func (j *Judge) GenerateRemediation(ctx context.Context, userPolicyText, gapAnalysis string) (*RemediationResult, error) {
	j.logger.Info("generating remediation plan", "framework", j.framework, "model", j.backend.Model())

	prompt := buildRemediationPrompt(j.framework, userPolicyText, gapAnalysis)
	remediationText, err := j.backend.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("remediation generation failed: %w", err)
	}

	j.logger.Info("remediation plan generated", "chars", len(remediationText))
	return &RemediationResult{
		Framework:   j.framework,
		Remediation: remediationText,
		ModelUsed:   j.backend.Model(),
	}, nil
}
