package extract

import (
	"reflect"
	"testing"
)

func TestSkills(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"Built React apps in JavaScript", []string{"JavaScript", "React"}},
		{"kubernetes, docker and AWS", []string{"AWS", "Docker", "Kubernetes"}},
		{"Python and SQL", []string{"Python", "SQL"}},
		{"Go and Rust", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		if got := Skills(tt.text); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Skills(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}

func TestSkillLabels(t *testing.T) {
	expected := []string{"JavaScript", "React", "Python", "SQL", "AWS", "Docker", "Kubernetes"}
	if got := SkillLabels(); !reflect.DeepEqual(got, expected) {
		t.Errorf("SkillLabels() = %v, expected %v", got, expected)
	}
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"5 years of experience", 5},
		{"10+ years building systems", 10},
		{"3 yrs in fintech", 3},
		{"1 year as intern, later 6 years as lead", 1},
		{"99 years", maxExperienceYears},
		{"Recent graduate", 0},
	}

	for _, tt := range tests {
		if got := ExperienceYears(tt.text); got != tt.expected {
			t.Errorf("ExperienceYears(%q) = %d, expected %d", tt.text, got, tt.expected)
		}
	}
}

func TestResume(t *testing.T) {
	text := "Jane Doe. Senior Software Engineer, 7 years with Python, SQL and Docker. " +
		"Master of Science. PMP holder. Based in Seattle, Washington."

	got := Resume(text)

	if !reflect.DeepEqual(got.Skills, []string{"Python", "SQL", "Docker"}) {
		t.Errorf("Skills = %v", got.Skills)
	}
	if got.ExperienceYears != 7 {
		t.Errorf("ExperienceYears = %d, expected 7", got.ExperienceYears)
	}
	if !reflect.DeepEqual(got.Education, []string{"Master's Degree"}) {
		t.Errorf("Education = %v", got.Education)
	}
	if !reflect.DeepEqual(got.Certifications, []string{"PMP Certification"}) {
		t.Errorf("Certifications = %v", got.Certifications)
	}
	if !reflect.DeepEqual(got.PreviousRoles, []string{"Software Engineer"}) {
		t.Errorf("PreviousRoles = %v", got.PreviousRoles)
	}
	if got.Location != "Washington" {
		t.Errorf("Location = %q, expected Washington", got.Location)
	}
}

func TestResumeEmpty(t *testing.T) {
	got := Resume("")
	if got.Skills == nil || got.Education == nil || got.Certifications == nil || got.PreviousRoles == nil {
		t.Errorf("expected empty non-nil slices, got %+v", got)
	}
	if got.Location != DefaultLocation {
		t.Errorf("Location = %q, expected %q", got.Location, DefaultLocation)
	}
}
