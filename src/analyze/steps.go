package analyze

import "staffline-agent/src/contracts"

// onboardingTemplate is the onboarding checklist attached to every contract.
var onboardingTemplate = []contracts.WorkflowStep{
	{Step: "Insurance Verification", Category: contracts.CategoryCompliance, Priority: contracts.PriorityHigh, EstimatedDays: 2},
	{Step: "Background Check Initiation", Category: contracts.CategoryScreening, Priority: contracts.PriorityHigh, EstimatedDays: 5},
	{Step: "Training Module Assignment", Category: contracts.CategoryTraining, Priority: contracts.PriorityMedium, EstimatedDays: 1},
	{Step: "Equipment Procurement", Category: contracts.CategoryLogistics, Priority: contracts.PriorityMedium, EstimatedDays: 3},
	{Step: "System Access Setup", Category: contracts.CategoryTechnical, Priority: contracts.PriorityLow, EstimatedDays: 1},
}

// GenerateSteps returns the onboarding workflow for a contract.
// The text is currently ignored: every contract gets the same five steps.
func GenerateSteps(_ string) []contracts.WorkflowStep {
	steps := make([]contracts.WorkflowStep, len(onboardingTemplate))
	copy(steps, onboardingTemplate)
	return steps
}

// TotalDays sums the estimated duration of steps.
func TotalDays(steps []contracts.WorkflowStep) int {
	total := 0
	for _, s := range steps {
		total += s.EstimatedDays
	}
	return total
}
