package analyze

import (
	"math"

	"staffline-agent/src/contracts"
	"staffline-agent/src/extract"
)

// MatchSkills compares the skills detected in a candidate's text with those in a job text.
// Arguments are not interchangeable: strengths and missing skills are always expressed
// relative to the job. A job without recognizable skills scores 0.
func MatchSkills(candidateText, jobText string) contracts.SkillMatch {
	jobSkills := extract.Skills(jobText)
	return matchAgainst(extract.Skills(candidateText), jobSkills)
}

func matchAgainst(candidateSkills, jobSkills []string) contracts.SkillMatch {
	has := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		has[s] = true
	}

	match := contracts.SkillMatch{
		MissingSkills: []string{},
		Strengths:     []string{},
	}
	for _, s := range jobSkills {
		if has[s] {
			match.Strengths = append(match.Strengths, s)
		} else {
			match.MissingSkills = append(match.MissingSkills, s)
		}
	}

	if len(jobSkills) > 0 {
		match.JobMatchScore = int(math.Round(100 * float64(len(match.Strengths)) / float64(len(jobSkills))))
	}
	return match
}
