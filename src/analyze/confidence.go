package analyze

import (
	"math/rand/v2"
)

// Confidence ranges reported for each document kind.
const (
	ContractConfidenceMin = 80
	ContractConfidenceMax = 99
	ResumeConfidenceMin   = 85
	ResumeConfidenceMax   = 99
)

// ConfidenceEstimator scores how much an analysis result can be trusted.
type ConfidenceEstimator interface {
	ContractConfidence(text string) int
	ResumeConfidence(text string) int
}

// PlaceholderConfidence draws a random score from the documented range.
// It does not look at the text; it stands in until a real model produces a score.
type PlaceholderConfidence struct{}

func (PlaceholderConfidence) ContractConfidence(string) int {
	return between(ContractConfidenceMin, ContractConfidenceMax)
}

func (PlaceholderConfidence) ResumeConfidence(string) int {
	return between(ResumeConfidenceMin, ResumeConfidenceMax)
}

// FixedConfidence always reports the same score.
type FixedConfidence int

func (f FixedConfidence) ContractConfidence(string) int { return int(f) }
func (f FixedConfidence) ResumeConfidence(string) int   { return int(f) }

// between returns a uniform integer in [lo, hi].
func between(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}
