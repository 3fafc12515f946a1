// Package analyze scores contracts and resumes on top of the extract detectors.
//
// The scoring functions (AssessRisk, MatchSkills, GenerateSteps) are total and pure.
// Analyzer wraps them into per-document results with a confidence estimate.
package analyze

import (
	"strings"

	"staffline-agent/src/contracts"
)

// riskRule raises one issue with its paired recommendation when any trigger is present.
type riskRule struct {
	triggers       []string
	issue          string
	recommendation string
}

var riskRules = []riskRule{
	{
		triggers:       []string{"unlimited", "indefinite"},
		issue:          "Unlimited or indefinite liability terms detected",
		recommendation: "Negotiate a liability cap tied to total contract value",
	},
	{
		triggers:       []string{"penalty", "fine"},
		issue:          "Penalty or fine clauses present",
		recommendation: "Review penalty terms and request mutual remedies before signing",
	},
}

// RiskLevelFor maps an issue count to a risk level.
// With two rules the count never exceeds 2, so RiskHigh is currently unreachable.
func RiskLevelFor(issues int) contracts.RiskLevel {
	switch {
	case issues > 2:
		return contracts.RiskHigh
	case issues > 0:
		return contracts.RiskMedium
	default:
		return contracts.RiskLow
	}
}

// AssessRisk scans contract text for risky clauses.
// Matching is substring based, so "fine" also fires on words like "define".
func AssessRisk(text string) contracts.RiskAssessment {
	lower := strings.ToLower(text)

	assessment := contracts.RiskAssessment{
		Issues:          []string{},
		Recommendations: []string{},
	}
	for _, rule := range riskRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				assessment.Issues = append(assessment.Issues, rule.issue)
				assessment.Recommendations = append(assessment.Recommendations, rule.recommendation)
				break
			}
		}
	}
	assessment.Level = RiskLevelFor(len(assessment.Issues))

	return assessment
}
