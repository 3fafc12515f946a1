package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"staffline-agent/src/contracts"
	"staffline-agent/src/sanitize"
	"staffline-agent/src/tui"
)

// readInput reads a text file, or stdin for "-", and normalizes it.
func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return sanitize.Clean(string(data)), nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printRecommendations(w io.Writer, heading string, recs []contracts.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", heading)
	for _, rec := range recs {
		fmt.Fprintf(w, "  [%3d%%] %s\n", rec.Confidence, rec.Title)
		if rec.Message != "" {
			fmt.Fprintf(w, "         %s\n", rec.Message)
		}
	}
}

func printCoordinations(w io.Writer, events []contracts.AgentCoordination) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(w, "\nCoordination")
	for _, ev := range events {
		fmt.Fprintf(w, "  %s → %s: %s\n", ev.TriggerAgent, ev.TargetAgent, ev.Action)
	}
}

// printWorkflowSummary prints an in-process workflow run grouped by stage.
func printWorkflowSummary(w io.Writer, result *contracts.WorkflowResult) {
	fmt.Fprintf(w, "Session %s (%s) finished at stage %s\n", result.SessionID, result.ATSSystem, result.Stage)
	printRecommendations(w, "Contract Compliance", result.ContractAnalysis)
	printRecommendations(w, "Candidate Matching", result.CandidateMatching)
	printRecommendations(w, "Capacity Planning", result.CapacityPlanning)
	printCoordinations(w, result.Coordinations)
}

// printReport prints a stored request.
func printReport(w io.Writer, r tui.Report) {
	fmt.Fprintf(w, "Request %s (%s): %s, stage %s\n", r.SessionID, r.Source, r.Status, r.Stage)
	fmt.Fprintf(w, "  %d recommendations, %d coordination events\n", len(r.Recommendations), len(r.Coordinations))
	printRecommendations(w, "Recommendations", r.Recommendations)
	printCoordinations(w, r.Coordinations)
}
