// Package ats simulates the applicant tracking systems the staffing pipeline pulls from.
//
// Every provider serves the same embedded fixture dataset; the system name is echoed
// into the record identifiers so results can be traced back to their source.
package ats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"staffline-agent/src/contracts"
)

// Provider defines the interface for ATS integrations
type Provider interface {
	// Name returns the system name (e.g., "greenhouse", "lever")
	Name() string

	// FetchContracts retrieves client contracts awaiting review
	FetchContracts(ctx context.Context) ([]contracts.Contract, error)

	// FetchJobs retrieves open requisitions
	FetchJobs(ctx context.Context) ([]contracts.Job, error)

	// FetchCandidates retrieves applicants for a job
	FetchCandidates(ctx context.Context, jobID string) ([]contracts.Candidate, error)
}

// Supported systems.
const (
	Greenhouse = "greenhouse"
	Lever      = "lever"
	BambooHR   = "bamboohr"
	Workday    = "workday"
)

var displayNames = map[string]string{
	Greenhouse: "Greenhouse",
	Lever:      "Lever",
	BambooHR:   "BambooHR",
	Workday:    "Workday",
}

// Known returns the supported system names in sorted order.
func Known() []string {
	names := make([]string, 0, len(displayNames))
	for name := range displayNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName returns the product name for a system label, or the label itself.
func DisplayName(label string) string {
	if name, ok := displayNames[normalize(label)]; ok {
		return name
	}
	return label
}

// Get returns the provider for a supported system.
func Get(label string) (Provider, error) {
	name := normalize(label)
	if name == "" {
		return nil, ErrMissingSystem
	}
	if _, ok := displayNames[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, label)
	}
	return newFixtureProvider(name), nil
}

// Resolve returns the provider for label, accepting unknown systems.
// Unknown labels get a generic fixture provider that echoes the label; only a blank label fails.
func Resolve(label string) (Provider, error) {
	name := normalize(label)
	if name == "" {
		return nil, ErrMissingSystem
	}
	return newFixtureProvider(name), nil
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
