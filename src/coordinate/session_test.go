package coordinate

import (
	"testing"

	"staffline-agent/src/contracts"
)

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageIdle, "IDLE"},
		{StageContractProcessed, "CONTRACT_PROCESSED"},
		{StageCandidatesMatched, "CANDIDATES_MATCHED"},
		{StageCapacityPlanned, "CAPACITY_PLANNED"},
		{StageDone, "DONE"},
		{Stage(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
		if tt.want == "UNKNOWN" {
			continue
		}
		if parsed, ok := ParseStage(tt.want); !ok || parsed != tt.stage {
			t.Errorf("ParseStage(%q) = %v, %v", tt.want, parsed, ok)
		}
	}
}

func TestSessionAdvanceIsMonotonic(t *testing.T) {
	s := NewSession("s")
	if s.Stage() != StageIdle {
		t.Fatalf("new session stage = %s, want IDLE", s.Stage())
	}

	s.advance(StageCandidatesMatched)
	s.advance(StageContractProcessed)
	if s.Stage() != StageCandidatesMatched {
		t.Errorf("stage moved backwards to %s", s.Stage())
	}

	s.advance(StageDone)
	if s.Stage() != StageDone {
		t.Errorf("stage = %s, want DONE", s.Stage())
	}
}

func TestLogEntriesSnapshot(t *testing.T) {
	log := NewLog()
	log.Append(contracts.AgentCoordination{ID: "1", Action: contracts.ActionSourceCandidates})
	log.Append(contracts.AgentCoordination{ID: "2", Action: contracts.ActionCapacityPlanning})

	entries := log.Entries()
	if len(entries) != 2 || entries[0].ID != "1" || entries[1].ID != "2" {
		t.Fatalf("unexpected entries %+v", entries)
	}

	entries[0].ID = "mutated"
	if log.Entries()[0].ID != "1" {
		t.Error("log mutated through snapshot")
	}
	if log.Len() != 2 {
		t.Errorf("Len = %d, want 2", log.Len())
	}
}
