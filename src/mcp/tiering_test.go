package mcp

import (
	"testing"

	"staffline-agent/src/contracts"
)

func candidate(id string, score int, missing ...any) contracts.Recommendation {
	return contracts.Recommendation{
		Type:       contracts.RecommendationCandidateMatch,
		Title:      "Candidate match: " + id,
		Confidence: score,
		Data: map[string]any{
			"candidate_id":   id,
			"missing_skills": missing,
		},
	}
}

func TestClassifyMatch(t *testing.T) {
	tests := []struct {
		score int
		tier  int
	}{
		{100, 1}, {70, 1}, {69, 2}, {40, 2}, {39, 3}, {0, 3},
	}
	for _, tt := range tests {
		if got := classifyMatch(tt.score); got != tt.tier {
			t.Errorf("classifyMatch(%d) = %d, expected %d", tt.score, got, tt.tier)
		}
	}
}

func TestTierCandidates(t *testing.T) {
	recs := []contracts.Recommendation{
		candidate("c1", 50, "AWS"),
		candidate("c2", 90),
		{Type: contracts.RecommendationCapacityPlanning, Confidence: 90},
		candidate("c3", 20, "React", "SQL"),
		candidate("c4", 100),
	}

	tiers := TierCandidates(recs, 0)

	if len(tiers.Strong) != 2 || tiers.Strong[0].CandidateID != "c4" || tiers.Strong[1].CandidateID != "c2" {
		t.Errorf("Unexpected strong tier: %+v", tiers.Strong)
	}
	if len(tiers.Partial) != 1 || tiers.Partial[0].CandidateID != "c1" {
		t.Errorf("Unexpected partial tier: %+v", tiers.Partial)
	}
	if len(tiers.Weak) != 1 || len(tiers.Weak[0].MissingSkills) != 2 {
		t.Errorf("Unexpected weak tier: %+v", tiers.Weak)
	}
	if recs[0].Data["candidate_id"] != "c1" {
		t.Error("Input recommendations were reordered")
	}
}

func TestTierCandidatesLimit(t *testing.T) {
	recs := []contracts.Recommendation{
		candidate("c1", 95), candidate("c2", 90), candidate("c3", 85),
	}

	tiers := TierCandidates(recs, 2)
	if len(tiers.Strong) != 2 {
		t.Errorf("Expected limit of 2, got %d", len(tiers.Strong))
	}
	if tiers.Weak == nil || tiers.Partial == nil {
		t.Error("Expected empty tiers to be non-nil")
	}
}

func TestSessionStore(t *testing.T) {
	store, err := NewSessionStore(2)
	if err != nil {
		t.Fatalf("NewSessionStore failed: %v", err)
	}

	a := store.GetOrCreate("a")
	if again := store.GetOrCreate("a"); again != a {
		t.Error("Expected the same session for a known id")
	}
	fresh := store.GetOrCreate("")
	if fresh.ID == "" {
		t.Error("Expected a generated session id")
	}

	store.GetOrCreate("c")
	if store.Len() != 2 {
		t.Errorf("Expected 2 sessions after eviction, got %d", store.Len())
	}
	if _, ok := store.Get("a"); ok {
		t.Error("Expected least recently used session to be evicted")
	}
}
