// Demo program to showcase the Staffline report viewer with every ATS in one session.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"staffline-agent/src/analyze"
	"staffline-agent/src/ats"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/tui"
)

func main() {
	ctx := context.Background()

	analyzer, err := analyze.NewAnalyzer(64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating analyzer: %v\n", err)
		os.Exit(1)
	}
	coord, err := coordinate.New(ctx, analyzer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating coordinator: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Running sample workflows...")
	session := coordinate.NewSession("demo-session")
	combined := &contracts.WorkflowResult{SessionID: session.ID, ATSSystem: "all systems"}
	for _, system := range ats.Known() {
		result, err := coord.SimulateFullWorkflow(ctx, session, system)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating %s: %v\n", system, err)
			os.Exit(1)
		}
		combined.ContractAnalysis = append(combined.ContractAnalysis, result.ContractAnalysis...)
		combined.CandidateMatching = append(combined.CandidateMatching, result.CandidateMatching...)
		combined.CapacityPlanning = append(combined.CapacityPlanning, result.CapacityPlanning...)
		combined.Coordinations = result.Coordinations
		combined.Stage = result.Stage
	}

	report := tui.ReportFromWorkflow(combined)
	fmt.Printf("Loaded %d recommendations and %d coordination events from %d systems.\n",
		len(report.Recommendations), len(report.Coordinations), len(ats.Known()))
	fmt.Println("Launching TUI...")
	time.Sleep(500 * time.Millisecond) // Brief pause for effect

	if err := tui.Start(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
