package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/scoring"
)

var fixedNow = time.Date(2026, time.August, 26, 10, 0, 0, 0, time.UTC)

func scoreWith(breakdown scoring.Breakdown, score int) scoring.ComplianceScore {
	return scoring.ComplianceScore{
		Score:      score,
		Percentage: "n/a",
		TotalGaps:  breakdown.Critical + breakdown.High + breakdown.Medium + breakdown.Low,
		RiskLevel:  "n/a",
		Breakdown:  breakdown,
	}
}

func TestGenerateAssessmentWording(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{"strong at 80", 80, assessmentStrong},
		{"moderate at 79", 79, assessmentModerate},
		{"moderate at 60", 60, assessmentModerate},
		{"critical at 59", 59, assessmentCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generateAt("analysis", scoreWith(scoring.Breakdown{}, tt.score), fixedNow)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestGenerateHeaderAndMetrics(t *testing.T) {
	score := scoring.ComplianceScore{
		Score:      73,
		Percentage: "73%",
		TotalGaps:  4,
		RiskLevel:  "Moderate",
		Breakdown:  scoring.Breakdown{Critical: 2, High: 1, Medium: 1},
	}
	out := generateAt("analysis", score, fixedNow)

	assert.True(t, strings.HasPrefix(out, "# EXECUTIVE SUMMARY\n"))
	assert.Contains(t, out, "**Date:** August 26, 2026")
	assert.Contains(t, out, "- **Compliance Score:** 73%")
	assert.Contains(t, out, "- **Risk Level:** Moderate")
	assert.Contains(t, out, "- **Total Gaps Identified:** 4")
	assert.Contains(t, out, "- **Critical Issues:** 2")
}

func TestGeneratePrioritySentence(t *testing.T) {
	score := scoreWith(scoring.Breakdown{}, 90)
	extra := "Critical gaps requiring immediate attention have been identified."

	withPriority := generateAt("The PRIORITY areas are listed below.", score, fixedNow)
	assert.Contains(t, withPriority, extra)

	withTop5 := generateAt("Here are the Top 5 issues.", score, fixedNow)
	assert.Contains(t, withTop5, extra)

	without := generateAt("No ranked findings.", score, fixedNow)
	assert.NotContains(t, without, extra)
	assert.Contains(t, without, "Please refer to the detailed gap analysis and remediation plan for specific actions.")
}

func TestGenerateTimelineLines(t *testing.T) {
	tests := []struct {
		name      string
		breakdown scoring.Breakdown
		contains  []string
		omits     []string
	}{
		{
			name:      "all buckets",
			breakdown: scoring.Breakdown{Critical: 1, High: 1, Medium: 1, Low: 1},
			contains: []string{
				"**Immediate (0-30 days):**",
				"**Short-term (1-3 months):**",
				"**Medium-term (3-6 months):**",
			},
		},
		{
			name:      "only medium",
			breakdown: scoring.Breakdown{Medium: 3},
			contains:  []string{"**Medium-term (3-6 months):**"},
			omits:     []string{"**Immediate (0-30 days):**", "**Short-term (1-3 months):**"},
		},
		{
			name:      "no gaps",
			breakdown: scoring.Breakdown{},
			omits: []string{
				"**Immediate (0-30 days):**",
				"**Short-term (1-3 months):**",
				"**Medium-term (3-6 months):**",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generateAt("analysis", scoreWith(tt.breakdown, 70), fixedNow)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.omits {
				assert.NotContains(t, out, unwanted)
			}
			// The long-term line is always present, and always last.
			require.Contains(t, out, "**Long-term (6-12 months):** Continuous improvement and monitoring")
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	score := scoreWith(scoring.Breakdown{Critical: 1}, 90)
	first := generateAt("same input", score, fixedNow)
	second := generateAt("same input", score, fixedNow)
	assert.Equal(t, first, second)
}
