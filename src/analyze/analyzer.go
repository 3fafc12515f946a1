package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"staffline-agent/src/contracts"
	"staffline-agent/src/extract"
)

// DefaultCacheSize bounds the number of memoized extractions per document kind.
const DefaultCacheSize = 256

// ErrMissingText is returned when a document to analyze is blank.
var ErrMissingText = errors.New("document text is required")

// Resume recommendation pool.
const (
	RecommendStrongMatch = "Strong technical background matches the role requirements"
	RecommendInterview   = "Schedule technical interview to validate skills"
	RecommendUpskilling  = "Plan upskilling for the missing skills before placement"
)

// strongMatchScore is the job match score from which a candidate counts as a strong fit.
const strongMatchScore = 70

// Analyzer produces contract and resume analysis results.
// It is safe for concurrent use.
type Analyzer struct {
	confidence ConfidenceEstimator
	contracts  *lru.Cache[string, contracts.ExtractedRequirements]
	resumes    *lru.Cache[string, contracts.ResumeInfo]
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithConfidence replaces the placeholder confidence estimator.
func WithConfidence(c ConfidenceEstimator) Option {
	return func(a *Analyzer) {
		a.confidence = c
	}
}

// NewAnalyzer creates an analyzer whose extraction caches hold up to cacheSize entries each.
// A cacheSize <= 0 falls back to DefaultCacheSize.
func NewAnalyzer(cacheSize int, opts ...Option) (*Analyzer, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	contractCache, err := lru.New[string, contracts.ExtractedRequirements](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract cache: %w", err)
	}
	resumeCache, err := lru.New[string, contracts.ResumeInfo](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume cache: %w", err)
	}

	a := &Analyzer{
		confidence: PlaceholderConfidence{},
		contracts:  contractCache,
		resumes:    resumeCache,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// AnalyzeContract extracts requirements, risk and the onboarding workflow from contract text.
func (a *Analyzer) AnalyzeContract(text string) (*contracts.ContractAnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("analyze contract: %w", ErrMissingText)
	}

	return &contracts.ContractAnalysisResult{
		Confidence:            a.confidence.ContractConfidence(text),
		ExtractedRequirements: a.requirements(text),
		RiskAnalysis:          AssessRisk(text),
		WorkflowSteps:         GenerateSteps(text),
	}, nil
}

// AnalyzeResume extracts candidate information from resume text and, when jobText is
// non-blank, scores it against the job.
func (a *Analyzer) AnalyzeResume(resumeText, jobText string) (*contracts.ResumeAnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("analyze resume: %w", ErrMissingText)
	}

	info := a.resume(resumeText)
	match := matchAgainst(info.Skills, extract.Skills(jobText))

	return &contracts.ResumeAnalysisResult{
		Confidence:      a.confidence.ResumeConfidence(resumeText),
		ExtractedInfo:   info,
		Matching:        match,
		Recommendations: ResumeRecommendations(match),
	}, nil
}

// ResumeRecommendations picks one to three items from the recommendation pool.
func ResumeRecommendations(match contracts.SkillMatch) []string {
	var recs []string
	if match.JobMatchScore >= strongMatchScore {
		recs = append(recs, RecommendStrongMatch)
	}
	recs = append(recs, RecommendInterview)
	if len(match.MissingSkills) > 0 {
		recs = append(recs, RecommendUpskilling)
	}
	return recs
}

func (a *Analyzer) requirements(text string) contracts.ExtractedRequirements {
	key := digest(text)
	if cached, ok := a.contracts.Get(key); ok {
		return cloneRequirements(cached)
	}
	req := extract.Requirements(text)
	a.contracts.Add(key, cloneRequirements(req))
	return req
}

func (a *Analyzer) resume(text string) contracts.ResumeInfo {
	key := digest(text)
	if cached, ok := a.resumes.Get(key); ok {
		return cloneResume(cached)
	}
	info := extract.Resume(text)
	a.resumes.Add(key, cloneResume(info))
	return info
}

func digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func cloneRequirements(r contracts.ExtractedRequirements) contracts.ExtractedRequirements {
	return contracts.ExtractedRequirements{
		Insurance:        cloneStrings(r.Insurance),
		Compliance:       cloneStrings(r.Compliance),
		Training:         cloneStrings(r.Training),
		Roles:            cloneStrings(r.Roles),
		Certificates:     cloneStrings(r.Certificates),
		BackgroundChecks: cloneStrings(r.BackgroundChecks),
		Location:         r.Location,
	}
}

func cloneResume(r contracts.ResumeInfo) contracts.ResumeInfo {
	return contracts.ResumeInfo{
		Skills:          cloneStrings(r.Skills),
		ExperienceYears: r.ExperienceYears,
		Education:       cloneStrings(r.Education),
		Certifications:  cloneStrings(r.Certifications),
		PreviousRoles:   cloneStrings(r.PreviousRoles),
		Location:        r.Location,
	}
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
