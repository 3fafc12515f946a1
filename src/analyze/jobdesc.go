package analyze

import (
	"fmt"
	"strings"

	"staffline-agent/src/extract"
)

// DefaultJobTitle is used when a job description is generated without a title.
const DefaultJobTitle = "Open Position"

// GenerateJobDescription fills the job posting template.
func GenerateJobDescription(title string, skills []string, location string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultJobTitle
	}
	location = strings.TrimSpace(location)
	if location == "" {
		location = extract.DefaultLocation
	}

	var cleaned []string
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Location: %s\n\n", location)
	fmt.Fprintf(&b, "We are looking for a %s to join our team in %s.\n\n", title, location)

	b.WriteString("Requirements:\n")
	if len(cleaned) == 0 {
		b.WriteString("- Relevant professional experience\n")
	}
	for _, s := range cleaned {
		fmt.Fprintf(&b, "- Experience with %s\n", s)
	}

	b.WriteString("\nResponsibilities:\n")
	b.WriteString("- Deliver high-quality work in collaboration with the client team\n")
	b.WriteString("- Complete onboarding, compliance and background screening before start\n")

	return b.String()
}
