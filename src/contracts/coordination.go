package contracts

import (
	"encoding/json"
	"fmt"
)

// AgentRole names one of the three logical agents.
type AgentRole string

const (
	AgentProjectManagement  AgentRole = "project_management"
	AgentRecruiting         AgentRole = "recruiting"
	AgentContractCompliance AgentRole = "contract_compliance"
)

// Coordination actions.
const (
	ActionSourceCandidates = "source_candidates"
	ActionCapacityPlanning = "capacity_planning"
)

// Recommendation types, one per agent output.
const (
	RecommendationContractCompliance = "contract_compliance"
	RecommendationCandidateMatch     = "candidate_match"
	RecommendationCapacityPlanning   = "capacity_planning"
)

// AgentCoordination records one agent's output triggering another agent.
// It is never mutated after creation.
type AgentCoordination struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id,omitempty"`
	TriggerAgent AgentRole `json:"trigger_agent"`
	TargetAgent  AgentRole `json:"target_agent"`
	Action       string    `json:"action"`
	// Payload shape depends on Action, see SourceCandidatesPayload and CapacityPlanningPayload.
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// DecodeData unmarshals the event payload into v.
func (c AgentCoordination) DecodeData(v any) error {
	if len(c.Data) == 0 {
		return fmt.Errorf("coordination %s has no payload", c.ID)
	}
	if err := json.Unmarshal(c.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", c.Action, err)
	}
	return nil
}

// SourceCandidatesPayload is attached to source_candidates events.
type SourceCandidatesPayload struct {
	RequiredRoles  []string `json:"required_roles"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location"`
}

// CapacityPlanningPayload is attached to capacity_planning events.
type CapacityPlanningPayload struct {
	JobID              string `json:"job_id"`
	MatchedCandidates  int    `json:"matched_candidates"`
	EstimatedStartDate string `json:"estimated_start_date"`
}

// Recommendation is the user-facing output of one agent stage.
type Recommendation struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"session_id,omitempty"`
	Agent      AgentRole      `json:"agent"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Confidence int            `json:"confidence"`
	Data       map[string]any `json:"data,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

// WorkflowResult is returned by a full simulated workflow run.
type WorkflowResult struct {
	SessionID         string              `json:"session_id"`
	ATSSystem         string              `json:"ats_system"`
	ContractAnalysis  []Recommendation    `json:"contract_analysis"`
	CandidateMatching []Recommendation    `json:"candidate_matching"`
	CapacityPlanning  []Recommendation    `json:"capacity_planning"`
	Coordinations     []AgentCoordination `json:"coordinations"`
	Stage             string              `json:"stage"`
}
