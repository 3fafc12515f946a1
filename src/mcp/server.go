package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"staffline-agent/src/analyze"
	"staffline-agent/src/ats"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/sanitize"
)

// Server is the MCP server for staffline.
type Server struct {
	mcpServer   *server.MCPServer
	analyzer    *analyze.Analyzer
	coordinator *coordinate.Coordinator
	sessions    *SessionStore
	defaultATS  string
}

// Option configures a Server.
type Option func(*Server)

// WithDefaultATS sets the system simulate_workflow uses when none is given.
func WithDefaultATS(label string) Option {
	return func(s *Server) {
		s.defaultATS = label
	}
}

// WithSessions replaces the session store.
func WithSessions(sessions *SessionStore) Option {
	return func(s *Server) {
		s.sessions = sessions
	}
}

// NewServer creates a new MCP server.
func NewServer(analyzer *analyze.Analyzer, coord *coordinate.Coordinator, opts ...Option) (*Server, error) {
	sessions, err := NewSessionStore(DefaultSessionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	s := server.NewMCPServer(
		"staffline",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv := &Server{
		mcpServer:   s,
		analyzer:    analyzer,
		coordinator: coord,
		sessions:    sessions,
		defaultATS:  ats.Greenhouse,
	}
	for _, opt := range opts {
		opt(srv)
	}
	srv.registerTools()

	return srv, nil
}

// registerTools registers all available tools.
func (s *Server) registerTools() {
	contractTool := mcp.NewTool("analyze_contract",
		mcp.WithDescription("Extract staffing requirements (insurance, compliance, training, roles, certificates, background checks, location), risk issues and the onboarding workflow from a client contract."),
		mcp.WithString("contract_text",
			mcp.Required(),
			mcp.Description("Full contract text"),
		),
	)

	resumeTool := mcp.NewTool("analyze_resume",
		mcp.WithDescription("Extract skills, experience, education and certifications from a resume and score it against an optional job description."),
		mcp.WithString("resume_text",
			mcp.Required(),
			mcp.Description("Full resume text"),
		),
		mcp.WithString("job_description",
			mcp.Description("Job description to match against; the score is 0 when omitted"),
		),
	)

	jobTool := mcp.NewTool("generate_job_description",
		mcp.WithDescription("Fill the job posting template with a title, required skills and a location."),
		mcp.WithString("title",
			mcp.Description("Job title (default: Open Position)"),
		),
		mcp.WithArray("skills",
			mcp.Description("Required skills"),
			mcp.WithStringItems(),
		),
		mcp.WithString("location",
			mcp.Description("Work location (default: Multiple Locations)"),
		),
	)

	simulateTool := mcp.NewTool("simulate_workflow",
		mcp.WithDescription("Run contract compliance, candidate matching and capacity planning against an applicant tracking system. Candidate matches are grouped into strong, partial and weak tiers. Pass a session_id from an earlier run to accumulate coordination events."),
		mcp.WithString("ats_system",
			mcp.Description("Applicant tracking system, e.g. greenhouse, lever, bamboohr, workday"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session to continue; a new session is created when omitted or unknown"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max candidates per tier (default: 10)"),
		),
	)

	coordinationsTool := mcp.NewTool("get_coordinations",
		mcp.WithDescription("List every coordination event recorded in a session, oldest first."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session ID from simulate_workflow"),
		),
	)

	s.mcpServer.AddTool(contractTool, s.handleAnalyzeContract)
	s.mcpServer.AddTool(resumeTool, s.handleAnalyzeResume)
	s.mcpServer.AddTool(jobTool, s.handleGenerateJobDescription)
	s.mcpServer.AddTool(simulateTool, s.handleSimulateWorkflow)
	s.mcpServer.AddTool(coordinationsTool, s.handleGetCoordinations)
}

// Run starts the MCP server on stdio.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleAnalyzeContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := sanitize.Clean(request.GetString("contract_text", ""))
	if text == "" {
		return mcp.NewToolResultError("contract_text parameter is required"), nil
	}

	result, err := s.analyzer.AnalyzeContract(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (s *Server) handleAnalyzeResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resume := sanitize.Clean(request.GetString("resume_text", ""))
	if resume == "" {
		return mcp.NewToolResultError("resume_text parameter is required"), nil
	}
	job := sanitize.Clean(request.GetString("job_description", ""))

	result, err := s.analyzer.AnalyzeResume(resume, job)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (s *Server) handleGenerateJobDescription(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	desc := analyze.GenerateJobDescription(
		sanitize.Clean(request.GetString("title", "")),
		sanitize.CleanList(request.GetStringSlice("skills", nil)),
		sanitize.Clean(request.GetString("location", "")),
	)
	return mcp.NewToolResultText(desc), nil
}

// handleSimulateWorkflow runs the full workflow and returns a tiered manifest.
func (s *Server) handleSimulateWorkflow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label := request.GetString("ats_system", "")
	if label == "" {
		label = s.defaultATS
	}
	limit := request.GetInt("limit", DefaultTierLimit)

	session := s.sessions.GetOrCreate(request.GetString("session_id", ""))

	result, err := s.coordinator.SimulateFullWorkflow(ctx, session, label)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("workflow failed: %v", ats.WrapError(err))), nil
	}
	return jsonResult(ToManifest(result, limit))
}

func (s *Server) handleGetCoordinations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("session_id", "")
	if id == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	session, ok := s.sessions.Get(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("session not found: %s", id)), nil
	}

	return jsonResult(CoordinationsResponse{
		SessionID:     session.ID,
		Stage:         session.Stage().String(),
		Coordinations: session.Log.Entries(),
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
