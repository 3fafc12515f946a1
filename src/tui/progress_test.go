package tui

import (
	"strings"
	"testing"
)

func TestProgressModel_Stages(t *testing.T) {
	tests := []struct {
		name     string
		msg      ProgressMsg
		contains []string
		missing  []string
	}{
		{
			name:     "unknown stage",
			msg:      ProgressMsg{Stage: "pending"},
			contains: []string{"Waiting for agents (pending)", "· Contract compliance", "· Capacity planning"},
			missing:  []string{"✓"},
		},
		{
			name:     "contract processed",
			msg:      ProgressMsg{Stage: "CONTRACT_PROCESSED", Current: 1, Total: 3},
			contains: []string{"✓ Contract compliance", "Candidate matching", "· Capacity planning", "1/3", "33%"},
		},
		{
			name:     "candidates matched",
			msg:      ProgressMsg{Stage: "CANDIDATES_MATCHED", Current: 2, Total: 3},
			contains: []string{"✓ Contract compliance", "✓ Candidate matching", "2/3", "67%"},
			missing:  []string{"· Candidate matching"},
		},
		{
			name:     "complete",
			msg:      ProgressMsg{Stage: StageComplete},
			contains: []string{"✓ Capacity planning", "Complete"},
			missing:  []string{"·"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, _ := NewProgressModel().Update(tt.msg)
			view := StripStyles(model.View())
			for _, want := range tt.contains {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q:\n%s", want, view)
				}
			}
			for _, unwanted := range tt.missing {
				if strings.Contains(view, unwanted) {
					t.Errorf("view should not contain %q:\n%s", unwanted, view)
				}
			}
		})
	}
}

func TestProgressModel_InitialView(t *testing.T) {
	view := StripStyles(NewProgressModel().View())
	if !strings.Contains(view, "Loading report...") {
		t.Errorf("expected loading line, got:\n%s", view)
	}
}

func TestProgressModel_SpinnerStopsWhenDone(t *testing.T) {
	model := NewProgressModel()

	model, cmd := model.Update(SpinnerTickMsg{})
	if cmd == nil {
		t.Error("spinner should keep ticking while agents work")
	}
	if model.frame != 1 {
		t.Errorf("frame = %d, expected 1", model.frame)
	}

	model, _ = model.Update(ProgressMsg{Stage: StageComplete})
	if _, cmd = model.Update(SpinnerTickMsg{}); cmd != nil {
		t.Error("spinner should stop once complete")
	}
}
