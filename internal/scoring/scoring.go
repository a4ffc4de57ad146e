// Package scoring converts free-text gap analysis output into a deterministic
// compliance score. Markers are counted as case-insensitive substrings, not
// word-boundary matches; "critical" inside "criticality" counts. Changing
// this would change every score, so the matching semantics are frozen.
package scoring

import (
	"fmt"
	"strings"
)

// Marker lists per severity bucket. The lists are fixed; scores are only
// comparable across runs as long as they stay identical.
var (
	criticalMarkers = []string{"critical", "severe", "urgent", "missing", "absent", "mandatory"}
	highMarkers     = []string{"high risk", "significant", "important", "required"}
	mediumMarkers   = []string{"medium", "moderate", "should", "recommended"}
	lowMarkers      = []string{"low", "minor", "optional", "suggested"}
)

// Breakdown holds the number of matched markers per severity bucket.
type Breakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Count returns the bucket count for the given severity.
func (b Breakdown) Count(s Severity) int {
	switch s {
	case SeverityCritical:
		return b.Critical
	case SeverityHigh:
		return b.High
	case SeverityMedium:
		return b.Medium
	case SeverityLow:
		return b.Low
	default:
		return 0
	}
}

// ComplianceScore summarizes the severity-weighted gap count of one analysis.
type ComplianceScore struct {
	Score      int       `json:"compliance_score"`
	Percentage string    `json:"compliance_percentage"`
	TotalGaps  int       `json:"total_gaps"`
	RiskLevel  string    `json:"risk_level"`
	Breakdown  Breakdown `json:"breakdown"`
}

// MarkerHit records how often a single marker occurred in the analysis text.
type MarkerHit struct {
	Marker   string
	Severity Severity
	Count    int
}

// CalculateScore derives a compliance score from gap analysis text. The
// function is pure and total: any input, including the empty string, yields
// a valid score.
func CalculateScore(analysisText string) ComplianceScore {
	text := strings.ToLower(analysisText)

	breakdown := Breakdown{
		Critical: countMarkers(text, criticalMarkers),
		High:     countMarkers(text, highMarkers),
		Medium:   countMarkers(text, mediumMarkers),
		Low:      countMarkers(text, lowMarkers),
	}

	totalGaps := breakdown.Critical + breakdown.High + breakdown.Medium + breakdown.Low

	score := 100
	if totalGaps > 0 {
		deduction := breakdown.Critical*SeverityCritical.Weight() +
			breakdown.High*SeverityHigh.Weight() +
			breakdown.Medium*SeverityMedium.Weight() +
			breakdown.Low*SeverityLow.Weight()
		score = 100 - deduction
		if score < 0 {
			score = 0
		}
	}

	return ComplianceScore{
		Score:      score,
		Percentage: fmt.Sprintf("%d%%", score),
		TotalGaps:  totalGaps,
		RiskLevel:  riskLevel(score),
		Breakdown:  breakdown,
	}
}

// MarkerHits reports every marker that occurred in the text at least once,
// in bucket order. Used by the SARIF export to emit one finding per marker.
func MarkerHits(analysisText string) []MarkerHit {
	text := strings.ToLower(analysisText)

	var hits []MarkerHit
	for _, group := range []struct {
		severity Severity
		markers  []string
	}{
		{SeverityCritical, criticalMarkers},
		{SeverityHigh, highMarkers},
		{SeverityMedium, mediumMarkers},
		{SeverityLow, lowMarkers},
	} {
		for _, marker := range group.markers {
			if n := strings.Count(text, marker); n > 0 {
				hits = append(hits, MarkerHit{Marker: marker, Severity: group.severity, Count: n})
			}
		}
	}
	return hits
}

func countMarkers(loweredText string, markers []string) int {
	total := 0
	for _, marker := range markers {
		total += strings.Count(loweredText, marker)
	}
	return total
}

func riskLevel(score int) string {
	switch {
	case score >= 90:
		return "Very Low"
	case score >= 80:
		return "Low"
	case score >= 70:
		return "Moderate"
	case score >= 60:
		return "High"
	default:
		return "Critical"
	}
}
