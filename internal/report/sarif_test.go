package report

import (
	"path/filepath"
	"testing"

	gosarif "github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/judge"
)

func TestExportSARIF(t *testing.T) {
	r := sampleReport()
	r.GapAnalysis = &judge.AnalysisResult{
		Framework: "NIST CSF",
		Analysis:  "Missing MFA is a critical gap. Training is recommended.",
		ModelUsed: "llama3.2:3b",
	}
	path := filepath.Join(t.TempDir(), "findings.sarif")

	require.NoError(t, testExporter().ExportSARIF(r, path))

	parsed, err := gosarif.Open(path)
	require.NoError(t, err)
	require.Len(t, parsed.Runs, 1)

	run := parsed.Runs[0]
	assert.Equal(t, sarifToolName, run.Tool.Driver.Name)

	// "missing" and "critical" (critical bucket) plus "recommended" (medium bucket).
	require.Len(t, run.Results, 3)

	levels := map[string]int{}
	for _, result := range run.Results {
		require.NotNil(t, result.Level)
		levels[*result.Level]++
	}
	assert.Equal(t, 2, levels["error"])
	assert.Equal(t, 1, levels["warning"])
}

func TestExportSARIFWithoutAnalysis(t *testing.T) {
	r := NewReport("NIST CSF", "llama3.2:3b")
	path := filepath.Join(t.TempDir(), "findings.sarif")

	err := testExporter().ExportSARIF(r, path)
	assert.Error(t, err)
}
