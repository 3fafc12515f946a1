package coordinate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"

	"staffline-agent/src/analyze"
	"staffline-agent/src/contracts"
	"staffline-agent/src/logger"
)

// Capacity planning figures reported for every project until real utilization data exists.
const (
	CurrentCapacity    = 75
	ProjectedCapacity  = 85
	OnboardingTimeline = "2-3 weeks"
	capacityConfidence = 90
)

// StartDateLead is how far ahead of matching the projected start date lies.
const StartDateLead = 14 * 24 * time.Hour

// StageResult is what one agent stage produced.
type StageResult struct {
	Recommendations []contracts.Recommendation
	// Coordination is the hand-off appended to the session log, nil when none was emitted.
	Coordination *contracts.AgentCoordination
}

// Coordinator runs agent stages against caller-owned sessions.
// It holds no per-request state and is safe for concurrent use.
type Coordinator struct {
	analyzer *analyze.Analyzer
	logger   logger.Logger
	now      func() time.Time
	workflow compose.Runnable[*workflowState, *contracts.WorkflowResult]
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the coordinator logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Coordinator) {
		c.logger = log
	}
}

// WithClock overrides the time source used for timestamps and start dates.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// New creates a coordinator and compiles its full-workflow graph.
func New(ctx context.Context, analyzer *analyze.Analyzer, opts ...Option) (*Coordinator, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}

	c := &Coordinator{
		analyzer: analyzer,
		logger:   logger.NewSilentLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	workflow, err := c.buildWorkflow(ctx)
	if err != nil {
		return nil, err
	}
	c.workflow = workflow

	return c, nil
}

// Analyzer returns the analyzer used for contracts and resumes.
func (c *Coordinator) Analyzer() *analyze.Analyzer {
	return c.analyzer
}

// ProcessNewContract runs contract analysis and, when the contract names roles to fill,
// hands off to the recruiting agent.
func (c *Coordinator) ProcessNewContract(ctx context.Context, session *Session, contract contracts.Contract) (*StageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis, err := c.analyzer.AnalyzeContract(contract.ContractText)
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", contract.ID, err)
	}

	req := analysis.ExtractedRequirements
	rec := c.recommendation(session, contracts.AgentContractCompliance, contracts.RecommendationContractCompliance)
	rec.Title = "Contract analysis: " + titleOr(contract.Title, contract.ID)
	rec.Message = fmt.Sprintf("Identified %d requirements across compliance categories; risk level %s with %d issue(s). %d onboarding steps planned over %d days.",
		countRequirements(req), analysis.RiskAnalysis.Level, len(analysis.RiskAnalysis.Issues),
		len(analysis.WorkflowSteps), analyze.TotalDays(analysis.WorkflowSteps))
	rec.Confidence = analysis.Confidence
	rec.Data = map[string]any{
		"contract_id":            contract.ID,
		"client":                 contract.Client,
		"extracted_requirements": req,
		"roles_required":         len(req.Roles),
		"risk_analysis":          analysis.RiskAnalysis,
		"workflow_steps":         analysis.WorkflowSteps,
	}

	result := &StageResult{Recommendations: []contracts.Recommendation{rec}}

	if len(req.Roles) > 0 {
		event, err := c.coordinate(session, contracts.AgentContractCompliance, contracts.AgentRecruiting,
			contracts.ActionSourceCandidates, contracts.SourceCandidatesPayload{
				RequiredRoles:  req.Roles,
				RequiredSkills: req.Certificates,
				Location:       req.Location,
			})
		if err != nil {
			return nil, err
		}
		result.Coordination = event
	}

	session.advance(StageContractProcessed)
	c.logger.Debug("[Coordinator] Session %s: contract %s processed (%d roles)", session.ID, contract.ID, len(req.Roles))

	return result, nil
}

// ProcessCandidateMatching scores every candidate's resume against the job description
// and hands the match count to the project management agent. Every candidate must carry resume text.
func (c *Coordinator) ProcessCandidateMatching(ctx context.Context, session *Session, job contracts.Job, candidates []contracts.Candidate) (*StageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, cand := range candidates {
		if strings.TrimSpace(cand.ResumeText) == "" {
			return nil, fmt.Errorf("candidate %s: %w", cand.ID, analyze.ErrMissingText)
		}
	}

	result := &StageResult{Recommendations: make([]contracts.Recommendation, 0, len(candidates))}

	for _, cand := range candidates {
		analysis, err := c.analyzer.AnalyzeResume(cand.ResumeText, job.Description)
		if err != nil {
			return nil, fmt.Errorf("candidate %s: %w", cand.ID, err)
		}
		match := analysis.Matching

		rec := c.recommendation(session, contracts.AgentRecruiting, contracts.RecommendationCandidateMatch)
		rec.Title = "Candidate match: " + titleOr(cand.FullName(), cand.ID)
		rec.Message = fmt.Sprintf("%s matches %d%% of the %s requirements.",
			titleOr(cand.FullName(), cand.ID), match.JobMatchScore, titleOr(job.Title, job.ID))
		if len(match.MissingSkills) > 0 {
			rec.Message += " Missing: " + strings.Join(match.MissingSkills, ", ") + "."
		}
		rec.Confidence = match.JobMatchScore
		rec.Data = map[string]any{
			"candidate_id":     cand.ID,
			"candidate_email":  cand.Email,
			"job_id":           job.ID,
			"job_match_score":  match.JobMatchScore,
			"strengths":        match.Strengths,
			"missing_skills":   match.MissingSkills,
			"experience_years": analysis.ExtractedInfo.ExperienceYears,
			"recommendations":  analysis.Recommendations,
		}
		result.Recommendations = append(result.Recommendations, rec)
	}

	event, err := c.coordinate(session, contracts.AgentRecruiting, contracts.AgentProjectManagement,
		contracts.ActionCapacityPlanning, contracts.CapacityPlanningPayload{
			JobID:              job.ID,
			MatchedCandidates:  len(candidates),
			EstimatedStartDate: c.now().Add(StartDateLead).Format("2006-01-02"),
		})
	if err != nil {
		return nil, err
	}
	result.Coordination = event

	session.advance(StageCandidatesMatched)
	c.logger.Debug("[Coordinator] Session %s: matched %d candidates for job %s", session.ID, len(candidates), job.ID)

	return result, nil
}

// ProcessCapacityPlanning produces the project management agent's capacity recommendation.
func (c *Coordinator) ProcessCapacityPlanning(ctx context.Context, session *Session, project contracts.ProjectData) (*StageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := titleOr(project.Name, project.JobID)
	rec := c.recommendation(session, contracts.AgentProjectManagement, contracts.RecommendationCapacityPlanning)
	rec.Title = "Capacity plan: " + name
	rec.Message = fmt.Sprintf("Onboarding %d matched candidate(s) for %s raises projected capacity from %d%% to %d%%. Expected onboarding timeline: %s.",
		project.MatchedCandidates, name, CurrentCapacity, ProjectedCapacity, OnboardingTimeline)
	rec.Confidence = capacityConfidence
	rec.Data = map[string]any{
		"job_id":              project.JobID,
		"matched_candidates":  project.MatchedCandidates,
		"current_capacity":    CurrentCapacity,
		"projected_capacity":  ProjectedCapacity,
		"onboarding_timeline": OnboardingTimeline,
	}

	session.advance(StageCapacityPlanned)
	c.logger.Debug("[Coordinator] Session %s: capacity planned for %s", session.ID, name)

	return &StageResult{Recommendations: []contracts.Recommendation{rec}}, nil
}

func (c *Coordinator) recommendation(session *Session, agent contracts.AgentRole, kind string) contracts.Recommendation {
	return contracts.Recommendation{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: session.ID,
		Agent:     agent,
		Type:      kind,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	}
}

// coordinate records a hand-off from trigger to target in the session log.
func (c *Coordinator) coordinate(session *Session, trigger, target contracts.AgentRole, action string, payload any) (*contracts.AgentCoordination, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", action, err)
	}

	event := contracts.AgentCoordination{
		ID:           uuid.Must(uuid.NewV7()).String(),
		SessionID:    session.ID,
		TriggerAgent: trigger,
		TargetAgent:  target,
		Action:       action,
		Data:         data,
		Timestamp:    c.now().UTC().Format(time.RFC3339),
	}
	session.Log.Append(event)

	return &event, nil
}

func countRequirements(r contracts.ExtractedRequirements) int {
	return len(r.Insurance) + len(r.Compliance) + len(r.Training) +
		len(r.Roles) + len(r.Certificates) + len(r.BackgroundChecks)
}

func titleOr(title, fallback string) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	return fallback
}
