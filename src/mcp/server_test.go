package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"staffline-agent/src/analyze"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	analyzer, err := analyze.NewAnalyzer(8, analyze.WithConfidence(analyze.FixedConfidence(90)))
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	coord, err := coordinate.New(context.Background(), analyzer)
	if err != nil {
		t.Fatalf("coordinate.New failed: %v", err)
	}
	srv, err := NewServer(analyzer, coord)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return srv
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("Expected tool result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestMissingArguments(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args    map[string]any
		want    string
	}{
		{"analyze_contract", srv.handleAnalyzeContract, map[string]any{}, "contract_text"},
		{"analyze_contract blank", srv.handleAnalyzeContract, map[string]any{"contract_text": " \n "}, "contract_text"},
		{"analyze_resume", srv.handleAnalyzeResume, map[string]any{"job_description": "React"}, "resume_text"},
		{"get_coordinations", srv.handleGetCoordinations, map[string]any{}, "session_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(ctx, callRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if !result.IsError {
				t.Fatal("Expected tool error")
			}
			if text := resultText(t, result); !strings.Contains(text, tt.want) {
				t.Errorf("Expected error mentioning %q, got %q", tt.want, text)
			}
		})
	}
}

func TestHandleAnalyzeContract(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleAnalyzeContract(context.Background(), callRequest(map[string]any{
		"contract_text": "\x1b[1mGeneral liability insurance\x1b[0m and HIPAA compliance. Hiring a developer in Texas.",
	}))
	if err != nil || result.IsError {
		t.Fatalf("handleAnalyzeContract failed: %v %v", err, result)
	}

	var analysis contracts.ContractAnalysisResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &analysis); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if analysis.Confidence != 90 {
		t.Errorf("Expected confidence 90, got %d", analysis.Confidence)
	}
	if analysis.ExtractedRequirements.Location != "Texas" {
		t.Errorf("Expected Texas, got %q", analysis.ExtractedRequirements.Location)
	}
	if len(analysis.ExtractedRequirements.Roles) == 0 {
		t.Error("Expected roles to be extracted")
	}
}

func TestHandleAnalyzeResume(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleAnalyzeResume(context.Background(), callRequest(map[string]any{
		"resume_text":     "Python and SQL analyst, 4 years",
		"job_description": "Python, SQL and AWS",
	}))
	if err != nil || result.IsError {
		t.Fatalf("handleAnalyzeResume failed: %v %v", err, result)
	}

	var analysis contracts.ResumeAnalysisResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &analysis); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if analysis.Matching.JobMatchScore != 67 {
		t.Errorf("Expected score 67, got %d", analysis.Matching.JobMatchScore)
	}
}

func TestHandleGenerateJobDescription(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleGenerateJobDescription(context.Background(), callRequest(map[string]any{
		"title":    "Data Engineer",
		"skills":   []any{"Python", " ", "SQL"},
		"location": "Remote",
	}))
	if err != nil || result.IsError {
		t.Fatalf("handleGenerateJobDescription failed: %v %v", err, result)
	}

	text := resultText(t, result)
	for _, want := range []string{"Data Engineer", "Location: Remote", "- Experience with Python", "- Experience with SQL"} {
		if !strings.Contains(text, want) {
			t.Errorf("Description missing %q:\n%s", want, text)
		}
	}
}

func simulate(t *testing.T, srv *Server, args map[string]any) WorkflowManifest {
	t.Helper()
	result, err := srv.handleSimulateWorkflow(context.Background(), callRequest(args))
	if err != nil || result.IsError {
		t.Fatalf("handleSimulateWorkflow failed: %v %v", err, result)
	}
	var manifest WorkflowManifest
	if err := json.Unmarshal([]byte(resultText(t, result)), &manifest); err != nil {
		t.Fatalf("Failed to decode manifest: %v", err)
	}
	return manifest
}

func TestHandleSimulateWorkflow(t *testing.T) {
	srv := newTestServer(t)

	manifest := simulate(t, srv, map[string]any{"ats_system": "lever"})
	if manifest.ATSSystem != "lever" {
		t.Errorf("Expected lever, got %s", manifest.ATSSystem)
	}
	if manifest.Stage != coordinate.StageDone.String() {
		t.Errorf("Expected DONE, got %s", manifest.Stage)
	}
	if manifest.Coordinations != 2 {
		t.Errorf("Expected 2 coordinations, got %d", manifest.Coordinations)
	}
	total := len(manifest.Candidates.Strong) + len(manifest.Candidates.Partial) + len(manifest.Candidates.Weak)
	if total != 2 {
		t.Errorf("Expected 2 tiered candidates, got %d", total)
	}

	// Continuing the session accumulates the log.
	again := simulate(t, srv, map[string]any{"session_id": manifest.SessionID})
	if again.SessionID != manifest.SessionID {
		t.Errorf("Expected session %s, got %s", manifest.SessionID, again.SessionID)
	}
	if again.Coordinations != 4 {
		t.Errorf("Expected 4 cumulative coordinations, got %d", again.Coordinations)
	}
	if again.ATSSystem != "greenhouse" {
		t.Errorf("Expected default ATS greenhouse, got %s", again.ATSSystem)
	}

	result, err := srv.handleGetCoordinations(context.Background(), callRequest(map[string]any{"session_id": manifest.SessionID}))
	if err != nil || result.IsError {
		t.Fatalf("handleGetCoordinations failed: %v %v", err, result)
	}
	var resp CoordinationsResponse
	if err := json.Unmarshal([]byte(resultText(t, result)), &resp); err != nil {
		t.Fatalf("Failed to decode coordinations: %v", err)
	}
	if len(resp.Coordinations) != 4 {
		t.Errorf("Expected 4 coordinations, got %d", len(resp.Coordinations))
	}
}

func TestHandleSimulateWorkflowUnknownSession(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleGetCoordinations(context.Background(), callRequest(map[string]any{"session_id": "nope"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected tool error for unknown session")
	}
}

func TestHandleSimulateWorkflowMissingSystem(t *testing.T) {
	srv := newTestServer(t)
	WithDefaultATS("")(srv)

	result, err := srv.handleSimulateWorkflow(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected tool error without an ATS system")
	}
	if text := resultText(t, result); !strings.Contains(text, "Supported systems") {
		t.Errorf("Expected hint listing systems, got %q", text)
	}
}
