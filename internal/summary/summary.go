// Package summary renders the executive summary narrative from an analysis
// and its compliance score.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/internal/scoring"
)

const (
	assessmentStrong   = "Your organization's cybersecurity policy demonstrates strong compliance with industry standards."
	assessmentModerate = "Your organization's cybersecurity policy shows moderate compliance but requires significant improvements."
	assessmentCritical = "Your organization's cybersecurity policy has critical gaps that expose you to substantial security risks."
)

// Generate builds the fixed-structure executive summary. Pure apart from the
// date header, which Generate stamps with the current day.
func Generate(analysisText string, score scoring.ComplianceScore) string {
	return generateAt(analysisText, score, time.Now())
}

func generateAt(analysisText string, score scoring.ComplianceScore, now time.Time) string {
	var b strings.Builder

	b.WriteString("# EXECUTIVE SUMMARY\n")
	fmt.Fprintf(&b, "**Date:** %s\n\n", now.Format("January 2, 2006"))

	b.WriteString("## Overall Assessment\n\n")
	b.WriteString(assessment(score.Score))
	b.WriteString("\n\n")

	b.WriteString("## Key Metrics\n\n")
	fmt.Fprintf(&b, "- **Compliance Score:** %s\n", score.Percentage)
	fmt.Fprintf(&b, "- **Risk Level:** %s\n", score.RiskLevel)
	fmt.Fprintf(&b, "- **Total Gaps Identified:** %d\n", score.TotalGaps)
	fmt.Fprintf(&b, "- **Critical Issues:** %d\n\n", score.Breakdown.Critical)

	b.WriteString("## Priority Recommendations\n\n")
	lowered := strings.ToLower(analysisText)
	if strings.Contains(lowered, "top 5") || strings.Contains(lowered, "priority") {
		b.WriteString("Critical gaps requiring immediate attention have been identified. ")
	}
	b.WriteString("Please refer to the detailed gap analysis and remediation plan for specific actions.\n\n")

	b.WriteString("## Recommended Timeline\n\n")
	if score.Breakdown.Critical > 0 {
		b.WriteString("- **Immediate (0-30 days):** Address critical security gaps\n")
	}
	if score.Breakdown.High > 0 {
		b.WriteString("- **Short-term (1-3 months):** Implement high-priority improvements\n")
	}
	if score.Breakdown.Medium > 0 {
		b.WriteString("- **Medium-term (3-6 months):** Complete medium-priority enhancements\n")
	}
	b.WriteString("- **Long-term (6-12 months):** Continuous improvement and monitoring\n\n")

	return b.String()
}

func assessment(score int) string {
	switch {
	case score >= 80:
		return assessmentStrong
	case score >= 60:
		return assessmentModerate
	default:
		return assessmentCritical
	}
}
