// Package mcp exposes contract analysis, resume matching and the agent workflow as MCP tools.
package mcp

import "staffline-agent/src/contracts"

// WorkflowManifest is the simulate_workflow response. Candidate matches are tiered so a
// client sees the strongest fits first; the full recommendations stay in the session.
type WorkflowManifest struct {
	SessionID        string                     `json:"session_id"`
	ATSSystem        string                     `json:"ats_system"`
	Stage            string                     `json:"stage"`
	ContractAnalysis []contracts.Recommendation `json:"contract_analysis"`
	Candidates       CandidateTiers             `json:"candidates"`
	CapacityPlanning []contracts.Recommendation `json:"capacity_planning"`
	Coordinations    int                        `json:"coordinations_count"`
}

// CandidateTiers groups candidate matches by score.
type CandidateTiers struct {
	Strong  []CandidateSummary `json:"strong"`
	Partial []CandidateSummary `json:"partial"`
	Weak    []CandidateSummary `json:"weak"`
}

// CandidateSummary is a lightweight view of one candidate_match recommendation.
type CandidateSummary struct {
	CandidateID   string   `json:"candidate_id"`
	Title         string   `json:"title"`
	Score         int      `json:"score"`
	MissingSkills []string `json:"missing_skills"`
}

// CoordinationsResponse is the get_coordinations response.
type CoordinationsResponse struct {
	SessionID     string                        `json:"session_id"`
	Stage         string                        `json:"stage"`
	Coordinations []contracts.AgentCoordination `json:"coordinations"`
}
