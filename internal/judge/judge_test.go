package judge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeBackend) Model() string { return "fake-model" }

func (f *fakeBackend) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestAnalyzeGaps(t *testing.T) {
	backend := &fakeBackend{response: "GAP ANALYSIS:\n1. Missing MFA - CRITICAL"}
	j := New(backend, "CIS MS-ISAC NIST Cybersecurity Framework", hclog.NewNullLogger())

	result, err := j.AnalyzeGaps(context.Background(), "our policy text", "reference text")
	require.NoError(t, err)

	assert.Equal(t, "CIS MS-ISAC NIST Cybersecurity Framework", result.Framework)
	assert.Equal(t, "GAP ANALYSIS:\n1. Missing MFA - CRITICAL", result.Analysis)
	assert.Equal(t, "fake-model", result.ModelUsed)

	require.Len(t, backend.prompts, 1)
	prompt := backend.prompts[0]
	assert.Contains(t, prompt, "CIS MS-ISAC NIST Cybersecurity Framework")
	assert.Contains(t, prompt, "our policy text")
	assert.Contains(t, prompt, "reference text")
	assert.NotContains(t, prompt, "{{")
}

func TestAnalyzeGapsBackendError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend unreachable")}
	j := New(backend, "NIST CSF", hclog.NewNullLogger())

	_, err := j.AnalyzeGaps(context.Background(), "policy", "reference")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap analysis failed")
	assert.Contains(t, err.Error(), "backend unreachable")
}

func TestGenerateRemediation(t *testing.T) {
	backend := &fakeBackend{response: "REMEDIATION PLAN:\n1. Deploy MFA"}
	j := New(backend, "NIST CSF", hclog.NewNullLogger())

	result, err := j.GenerateRemediation(context.Background(), "our policy text", "1. Missing MFA - CRITICAL")
	require.NoError(t, err)

	assert.Equal(t, "NIST CSF", result.Framework)
	assert.Equal(t, "REMEDIATION PLAN:\n1. Deploy MFA", result.Remediation)
	assert.Equal(t, "fake-model", result.ModelUsed)

	require.Len(t, backend.prompts, 1)
	prompt := backend.prompts[0]
	assert.Contains(t, prompt, "1. Missing MFA - CRITICAL")
	assert.Contains(t, prompt, "our policy text")
	assert.NotContains(t, prompt, "{{")
}

func TestGenerateRemediationBackendError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("500 from backend")}
	j := New(backend, "NIST CSF", hclog.NewNullLogger())

	_, err := j.GenerateRemediation(context.Background(), "policy", "analysis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remediation generation failed")
}

func TestPromptTemplatesEmbedded(t *testing.T) {
	for _, tmpl := range []string{gapAnalysisPrompt, remediationPrompt} {
		assert.NotEmpty(t, tmpl)
		assert.True(t, strings.Contains(tmpl, "{{FRAMEWORK_NAME}}"))
		assert.True(t, strings.Contains(tmpl, "{{USER_POLICY}}"))
	}
	assert.Contains(t, gapAnalysisPrompt, "{{REFERENCE_STANDARD}}")
	assert.Contains(t, remediationPrompt, "{{GAP_ANALYSIS}}")
}
