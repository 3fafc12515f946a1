package coordinate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"staffline-agent/src/ats"
	"staffline-agent/src/contracts"
)

func TestSimulateFullWorkflow(t *testing.T) {
	c := newTestCoordinator(t)
	session := NewSession("wf-1")

	result, err := c.SimulateFullWorkflow(context.Background(), session, "greenhouse")
	if err != nil {
		t.Fatalf("SimulateFullWorkflow failed: %v", err)
	}

	if len(result.ContractAnalysis) != 1 {
		t.Errorf("contract analysis = %d, want 1", len(result.ContractAnalysis))
	}
	if len(result.CandidateMatching) != 2 {
		t.Errorf("candidate matching = %d, want 2", len(result.CandidateMatching))
	}
	if len(result.CapacityPlanning) != 1 {
		t.Errorf("capacity planning = %d, want 1", len(result.CapacityPlanning))
	}
	if len(result.Coordinations) != 2 {
		t.Fatalf("coordinations = %d, want 2", len(result.Coordinations))
	}
	if result.Coordinations[0].Action != contracts.ActionSourceCandidates {
		t.Errorf("first coordination = %q, want source_candidates", result.Coordinations[0].Action)
	}
	if result.Coordinations[1].Action != contracts.ActionCapacityPlanning {
		t.Errorf("second coordination = %q, want capacity_planning", result.Coordinations[1].Action)
	}

	if result.SessionID != "wf-1" || result.ATSSystem != ats.Greenhouse {
		t.Errorf("unexpected identity %q/%q", result.SessionID, result.ATSSystem)
	}
	if result.Stage != "DONE" || session.Stage() != StageDone {
		t.Errorf("Stage = %q, want DONE", result.Stage)
	}

	planning := result.CapacityPlanning[0]
	if planning.Data["matched_candidates"] != 2 {
		t.Errorf("matched_candidates = %v, want 2", planning.Data["matched_candidates"])
	}
}

func TestSimulateFullWorkflowCumulativeLog(t *testing.T) {
	c := newTestCoordinator(t)
	session := NewSession("wf-2")

	if _, err := c.SimulateFullWorkflow(context.Background(), session, "lever"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	result, err := c.SimulateFullWorkflow(context.Background(), session, "lever")
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(result.Coordinations) != 4 {
		t.Errorf("coordinations = %d, want 4 across two runs", len(result.Coordinations))
	}
	if len(result.ContractAnalysis) != 1 || len(result.CandidateMatching) != 2 {
		t.Error("per-run recommendations should not accumulate")
	}

	// A fresh session starts over.
	fresh, err := c.SimulateFullWorkflow(context.Background(), NewSession(""), "lever")
	if err != nil {
		t.Fatalf("fresh run failed: %v", err)
	}
	if len(fresh.Coordinations) != 2 {
		t.Errorf("fresh session coordinations = %d, want 2", len(fresh.Coordinations))
	}
}

func TestSimulateFullWorkflowUnknownSystem(t *testing.T) {
	c := newTestCoordinator(t)

	result, err := c.SimulateFullWorkflow(context.Background(), NewSession(""), "Taleo")
	if err != nil {
		t.Fatalf("SimulateFullWorkflow failed: %v", err)
	}
	if result.ATSSystem != "taleo" {
		t.Errorf("ATSSystem = %q, want taleo", result.ATSSystem)
	}
	for _, rec := range result.CandidateMatching {
		id, _ := rec.Data["candidate_id"].(string)
		if !strings.HasPrefix(id, "taleo-") {
			t.Errorf("candidate id %q does not echo the ATS label", id)
		}
	}
}

func TestSimulateFullWorkflowBlankSystem(t *testing.T) {
	c := newTestCoordinator(t)

	if _, err := c.SimulateFullWorkflow(context.Background(), NewSession(""), " "); !errors.Is(err, ats.ErrMissingSystem) {
		t.Errorf("error = %v, want ErrMissingSystem", err)
	}
}

// emptyProvider returns a contract but no jobs.
type emptyProvider struct{}

func (emptyProvider) Name() string { return "empty" }

func (emptyProvider) FetchContracts(context.Context) ([]contracts.Contract, error) {
	return []contracts.Contract{{ID: "c", ContractText: "developer"}}, nil
}

func (emptyProvider) FetchJobs(context.Context) ([]contracts.Job, error) {
	return nil, nil
}

func (emptyProvider) FetchCandidates(context.Context, string) ([]contracts.Candidate, error) {
	return nil, nil
}

func TestRunWorkflowPropagatesProviderErrors(t *testing.T) {
	c := newTestCoordinator(t)
	session := NewSession("")

	_, err := c.RunWorkflow(context.Background(), session, emptyProvider{})
	if !errors.Is(err, ats.ErrNoJobs) {
		t.Fatalf("error = %v, want ErrNoJobs", err)
	}
	if session.Stage() != StageContractProcessed {
		t.Errorf("Stage = %s, want CONTRACT_PROCESSED after partial run", session.Stage())
	}
}
