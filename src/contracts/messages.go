// Package contracts defines the data structures shared by the extraction pipeline,
// the agent coordinator and the agents that exchange them over the broker.
package contracts

// ExtractedRequirements holds the categorized requirements detected in contract text.
// Every slice only contains canned values from its category vocabulary.
type ExtractedRequirements struct {
	Insurance        []string `json:"insurance"`
	Compliance       []string `json:"compliance"`
	Training         []string `json:"training"`
	Roles            []string `json:"roles"`
	Certificates     []string `json:"certificates"`
	BackgroundChecks []string `json:"background_checks"`
	// Single best-guess location label, "Multiple Locations" when nothing matched.
	Location string `json:"location"`
}

// RiskLevel is the coarse risk classification of a contract.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment lists the issues found in a contract and one recommendation per issue.
type RiskAssessment struct {
	Level           RiskLevel `json:"level"`
	Issues          []string  `json:"issues"`
	Recommendations []string  `json:"recommendations"`
}

// StepCategory groups onboarding workflow steps.
type StepCategory string

const (
	CategoryCompliance StepCategory = "compliance"
	CategoryScreening  StepCategory = "screening"
	CategoryTraining   StepCategory = "training"
	CategoryLogistics  StepCategory = "logistics"
	CategoryTechnical  StepCategory = "technical"
)

// Priority ranks workflow steps.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// WorkflowStep is one onboarding checklist entry.
type WorkflowStep struct {
	Step          string       `json:"step"`
	Category      StepCategory `json:"category"`
	Priority      Priority     `json:"priority"`
	EstimatedDays int          `json:"estimated_days"`
}

// ContractAnalysisResult is produced once per contract analysis and never mutated.
type ContractAnalysisResult struct {
	// Placeholder score in [80,99], not derived from the text.
	Confidence            int                   `json:"confidence"`
	ExtractedRequirements ExtractedRequirements `json:"extracted_requirements"`
	RiskAnalysis          RiskAssessment        `json:"risk_analysis"`
	WorkflowSteps         []WorkflowStep        `json:"workflow_steps"`
}

// ResumeInfo is the structured information detected in resume text.
type ResumeInfo struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       []string `json:"education"`
	Certifications  []string `json:"certifications"`
	PreviousRoles   []string `json:"previous_roles"`
	Location        string   `json:"location"`
}

// SkillMatch is the overlap between a candidate's skills and a job's required skills.
type SkillMatch struct {
	JobMatchScore int      `json:"job_match_score"`
	MissingSkills []string `json:"missing_skills"`
	Strengths     []string `json:"strengths"`
}

// ResumeAnalysisResult is produced once per resume analysis.
type ResumeAnalysisResult struct {
	// Placeholder score in [85,99], not derived from the text.
	Confidence      int        `json:"confidence"`
	ExtractedInfo   ResumeInfo `json:"extracted_info"`
	Matching        SkillMatch `json:"matching"`
	Recommendations []string   `json:"recommendations"`
}

// Contract is a client staffing contract as delivered by an ATS.
type Contract struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Client       string `json:"client" yaml:"client"`
	ContractText string `json:"contract_text" yaml:"contract_text"`
}

// Job is an open requisition.
type Job struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	Location       string   `json:"location" yaml:"location"`
	RequiredSkills []string `json:"required_skills" yaml:"required_skills"`
}

// Candidate is an applicant together with the text of their resume.
type Candidate struct {
	ID         string `json:"id" yaml:"id"`
	FirstName  string `json:"first_name" yaml:"first_name"`
	LastName   string `json:"last_name" yaml:"last_name"`
	Email      string `json:"email" yaml:"email"`
	ResumeText string `json:"resume_text" yaml:"resume_text"`
}

// FullName returns "first last" with surrounding blanks removed.
func (c Candidate) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ProjectData is the input to capacity planning.
type ProjectData struct {
	Name              string `json:"name"`
	JobID             string `json:"job_id"`
	MatchedCandidates int    `json:"matched_candidates"`
}
