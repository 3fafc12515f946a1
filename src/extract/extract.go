// Package extract provides stateless keyword detectors over contract and resume text.
//
// Detection is keyword -> canned output: when any trigger of a category appears in the
// text (case-insensitive substring match) the category's fixed labels are returned.
// Nothing is parsed out of the text itself, so "liability" always yields
// "General Liability $1M" regardless of the amount written in the contract.
package extract

import (
	"strings"

	"staffline-agent/src/contracts"
)

// DefaultLocation is reported when no known location appears in the text.
const DefaultLocation = "Multiple Locations"

// Category is a trigger vocabulary with the canned labels it produces.
type Category struct {
	Name     string
	Triggers []string
	Outputs  []string
}

// Matches reports whether any trigger appears in already lower-cased text.
func (c Category) Matches(lower string) bool {
	return containsAny(lower, c.Triggers)
}

var (
	Insurance = Category{
		Name:     "insurance",
		Triggers: []string{"liability", "insurance", "coverage", "workers comp"},
		Outputs:  []string{"General Liability $1M", "Professional Liability $2M", "Workers Compensation"},
	}
	Compliance = Category{
		Name:     "compliance",
		Triggers: []string{"compliance", "regulation", "regulatory", "hipaa", "sox", "gdpr", "osha"},
		Outputs:  []string{"HIPAA Compliance", "SOX Compliance", "Data Privacy (GDPR)"},
	}
	Training = Category{
		Name:     "training",
		Triggers: []string{"training", "orientation", "onboarding"},
		Outputs:  []string{"Safety Training", "Compliance Training", "Company Orientation"},
	}
	Roles = Category{
		Name:     "roles",
		Triggers: []string{"developer", "engineer", "analyst", "designer", "manager"},
		Outputs:  []string{"Software Developer", "Project Manager", "Business Analyst"},
	}
	Certificates = Category{
		Name:     "certificates",
		Triggers: []string{"certified", "certificate", "certification", "license"},
		Outputs:  []string{"PMP Certification", "AWS Certified Solutions Architect"},
	}
	BackgroundChecks = Category{
		Name:     "background_checks",
		Triggers: []string{"background", "drug", "screening", "clearance"},
		Outputs:  []string{"Criminal Background Check", "Drug Screening", "Employment Verification"},
	}
)

// location is a label and the lower-case term that selects it.
type location struct {
	term  string
	label string
}

// Ordered: the first entry present in the text wins.
var locations = []location{
	{"california", "California"},
	{"new york", "New York"},
	{"texas", "Texas"},
	{"florida", "Florida"},
	{"illinois", "Illinois"},
	{"washington", "Washington"},
	{"remote", "Remote"},
}

// Requirements runs every contract category detector over text.
// It never fails: text without any trigger yields empty slices.
func Requirements(text string) contracts.ExtractedRequirements {
	lower := strings.ToLower(text)

	return contracts.ExtractedRequirements{
		Insurance:        detect(lower, Insurance),
		Compliance:       detect(lower, Compliance),
		Training:         detect(lower, Training),
		Roles:            detect(lower, Roles),
		Certificates:     detect(lower, Certificates),
		BackgroundChecks: detect(lower, BackgroundChecks),
		Location:         Location(text),
	}
}

// Location returns the first known location found in text, or DefaultLocation.
func Location(text string) string {
	lower := strings.ToLower(text)
	for _, loc := range locations {
		if strings.Contains(lower, loc.term) {
			return loc.label
		}
	}
	return DefaultLocation
}

// detect returns a fresh copy of the category outputs when it matches, else an empty slice.
func detect(lower string, c Category) []string {
	if !c.Matches(lower) {
		return []string{}
	}
	out := make([]string, len(c.Outputs))
	copy(out, c.Outputs)
	return out
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
