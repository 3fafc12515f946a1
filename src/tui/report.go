package tui

import (
	"staffline-agent/src/contracts"
)

// Report is what the viewer displays: every recommendation and coordination
// event recorded for one workflow session.
type Report struct {
	SessionID       string                        `json:"session_id"`
	Source          string                        `json:"source"`
	Status          string                        `json:"status"`
	Stage           string                        `json:"stage"`
	Recommendations []contracts.Recommendation    `json:"recommendations"`
	Coordinations   []contracts.AgentCoordination `json:"coordinations"`
}

// ReportFromWorkflow builds a report from an in-process workflow run.
func ReportFromWorkflow(result *contracts.WorkflowResult) Report {
	if result == nil {
		return Report{}
	}

	var recs []contracts.Recommendation
	recs = append(recs, result.ContractAnalysis...)
	recs = append(recs, result.CandidateMatching...)
	recs = append(recs, result.CapacityPlanning...)

	return Report{
		SessionID:       result.SessionID,
		Source:          result.ATSSystem,
		Status:          contracts.StatusCompleted,
		Stage:           result.Stage,
		Recommendations: recs,
		Coordinations:   result.Coordinations,
	}
}

// ReportFromStore builds a report from a persisted request.
func ReportFromStore(status *contracts.RequestStatus, coords []contracts.AgentCoordination, recs []contracts.Recommendation) Report {
	r := Report{
		Recommendations: recs,
		Coordinations:   coords,
	}
	if status != nil {
		r.SessionID = status.RequestID
		r.Source = status.Source
		r.Status = status.Status
		r.Stage = status.Stage
	}
	return r
}

// InProgress reports whether more results may still arrive.
func (r Report) InProgress() bool {
	return r.Status == contracts.StatusPending || r.Status == contracts.StatusProcessing
}

// Items flattens the report into ranked list items, recommendations first.
func (r Report) Items() []Item {
	items := make([]Item, 0, len(r.Recommendations)+len(r.Coordinations))
	for i := range r.Recommendations {
		items = append(items, Item{Kind: KindRecommendation, Rec: &r.Recommendations[i]})
	}
	for i := range r.Coordinations {
		items = append(items, Item{Kind: KindCoordination, Event: &r.Coordinations[i]})
	}
	for i := range items {
		items[i].Rank = i + 1
	}
	return items
}

// Agents returns the agent roles that appear in the report, in first-seen order.
func (r Report) Agents() []string {
	seen := make(map[string]bool)
	var agents []string
	add := func(role contracts.AgentRole) {
		if role == "" || seen[string(role)] {
			return
		}
		seen[string(role)] = true
		agents = append(agents, string(role))
	}
	for _, rec := range r.Recommendations {
		add(rec.Agent)
	}
	for _, ev := range r.Coordinations {
		add(ev.TriggerAgent)
		add(ev.TargetAgent)
	}
	return agents
}
