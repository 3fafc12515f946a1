package extract

import (
	"regexp"
	"strconv"
	"strings"

	"staffline-agent/src/contracts"
)

// skill maps a vocabulary term to its display label.
type skill struct {
	term  string
	label string
}

// skillVocabulary is the fixed set of skills recognized on both resumes and job texts.
var skillVocabulary = []skill{
	{"javascript", "JavaScript"},
	{"react", "React"},
	{"python", "Python"},
	{"sql", "SQL"},
	{"aws", "AWS"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
}

// labelled is a single trigger group producing one canned label.
type labelled struct {
	triggers []string
	label    string
}

var (
	education = []labelled{
		{[]string{"bachelor", "b.s.", "b.a.", "bsc"}, "Bachelor's Degree"},
		{[]string{"master", "m.s.", "mba", "msc"}, "Master's Degree"},
		{[]string{"phd", "ph.d", "doctorate"}, "Doctorate"},
	}
	certifications = []labelled{
		{[]string{"aws certified"}, "AWS Certified Solutions Architect"},
		{[]string{"pmp"}, "PMP Certification"},
		{[]string{"cka", "kubernetes administrator"}, "Certified Kubernetes Administrator"},
		{[]string{"scrum master", "csm"}, "Certified Scrum Master"},
	}
	previousRoles = []labelled{
		{[]string{"software engineer"}, "Software Engineer"},
		{[]string{"developer"}, "Software Developer"},
		{[]string{"tech lead", "team lead"}, "Technical Lead"},
		{[]string{"data analyst"}, "Data Analyst"},
		{[]string{"project manager"}, "Project Manager"},
	}

	// "5 years", "10+ years", "3 yrs"
	experiencePattern = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(years?|yrs?)\b`)
)

// maxExperienceYears caps implausible mentions such as "99 years".
const maxExperienceYears = 50

// Skills returns the vocabulary skills present in text, in vocabulary order.
func Skills(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, s := range skillVocabulary {
		if strings.Contains(lower, s.term) {
			out = append(out, s.label)
		}
	}
	return out
}

// SkillLabels returns the full skill vocabulary as display labels.
func SkillLabels() []string {
	out := make([]string, len(skillVocabulary))
	for i, s := range skillVocabulary {
		out[i] = s.label
	}
	return out
}

// ExperienceYears returns the first "N years" mention in text, 0 when there is none.
func ExperienceYears(text string) int {
	m := experiencePattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if years > maxExperienceYears {
		return maxExperienceYears
	}
	return years
}

// Resume runs the resume detectors over text.
func Resume(text string) contracts.ResumeInfo {
	lower := strings.ToLower(text)

	return contracts.ResumeInfo{
		Skills:          Skills(text),
		ExperienceYears: ExperienceYears(text),
		Education:       detectLabelled(lower, education),
		Certifications:  detectLabelled(lower, certifications),
		PreviousRoles:   detectLabelled(lower, previousRoles),
		Location:        Location(text),
	}
}

func detectLabelled(lower string, groups []labelled) []string {
	out := []string{}
	for _, g := range groups {
		if containsAny(lower, g.triggers) {
			out = append(out, g.label)
		}
	}
	return out
}
