package mcp

import (
	"sort"

	"staffline-agent/src/contracts"
)

// Score thresholds for candidate tiers.
const (
	StrongMatchScore  = 70
	PartialMatchScore = 40
)

// DefaultTierLimit caps each tier in a manifest.
const DefaultTierLimit = 10

// classifyMatch returns 1 (strong), 2 (partial) or 3 (weak).
func classifyMatch(score int) int {
	switch {
	case score >= StrongMatchScore:
		return 1
	case score >= PartialMatchScore:
		return 2
	default:
		return 3
	}
}

// toSummary converts a candidate_match recommendation into a CandidateSummary.
func toSummary(rec contracts.Recommendation) CandidateSummary {
	s := CandidateSummary{
		Title:         rec.Title,
		Score:         rec.Confidence,
		MissingSkills: []string{},
	}
	if id, ok := rec.Data["candidate_id"].(string); ok {
		s.CandidateID = id
	}
	switch missing := rec.Data["missing_skills"].(type) {
	case []string:
		s.MissingSkills = append(s.MissingSkills, missing...)
	case []any:
		for _, m := range missing {
			if skill, ok := m.(string); ok {
				s.MissingSkills = append(s.MissingSkills, skill)
			}
		}
	}
	return s
}

// TierCandidates groups candidate recommendations into tiers, highest score first.
// limit caps each tier; values <= 0 use DefaultTierLimit. recs is not modified.
func TierCandidates(recs []contracts.Recommendation, limit int) CandidateTiers {
	if limit <= 0 {
		limit = DefaultTierLimit
	}

	summaries := make([]CandidateSummary, 0, len(recs))
	for _, rec := range recs {
		if rec.Type == contracts.RecommendationCandidateMatch {
			summaries = append(summaries, toSummary(rec))
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Score > summaries[j].Score
	})

	tiers := CandidateTiers{
		Strong:  []CandidateSummary{},
		Partial: []CandidateSummary{},
		Weak:    []CandidateSummary{},
	}
	for _, s := range summaries {
		switch classifyMatch(s.Score) {
		case 1:
			if len(tiers.Strong) < limit {
				tiers.Strong = append(tiers.Strong, s)
			}
		case 2:
			if len(tiers.Partial) < limit {
				tiers.Partial = append(tiers.Partial, s)
			}
		default:
			if len(tiers.Weak) < limit {
				tiers.Weak = append(tiers.Weak, s)
			}
		}
	}
	return tiers
}

// ToManifest converts a workflow result into the simulate_workflow response.
func ToManifest(result *contracts.WorkflowResult, limit int) WorkflowManifest {
	return WorkflowManifest{
		SessionID:        result.SessionID,
		ATSSystem:        result.ATSSystem,
		Stage:            result.Stage,
		ContractAnalysis: result.ContractAnalysis,
		Candidates:       TierCandidates(result.CandidateMatching, limit),
		CapacityPlanning: result.CapacityPlanning,
		Coordinations:    len(result.Coordinations),
	}
}
