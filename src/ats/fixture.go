package ats

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"staffline-agent/src/contracts"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// dataset is the on-disk layout of fixtures.yaml.
type dataset struct {
	Contracts  []contracts.Contract  `yaml:"contracts"`
	Jobs       []contracts.Job       `yaml:"jobs"`
	Candidates []contracts.Candidate `yaml:"candidates"`
}

var loadDataset = sync.OnceValues(func() (*dataset, error) {
	var ds dataset
	if err := yaml.Unmarshal(fixturesYAML, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse ATS fixtures: %w", err)
	}
	return &ds, nil
})

// FixtureProvider serves the embedded dataset under a system name.
type FixtureProvider struct {
	name string
}

var _ Provider = (*FixtureProvider)(nil)

func newFixtureProvider(name string) *FixtureProvider {
	return &FixtureProvider{name: name}
}

func (p *FixtureProvider) Name() string {
	return p.name
}

func (p *FixtureProvider) FetchContracts(ctx context.Context) ([]contracts.Contract, error) {
	ds, err := p.dataset(ctx)
	if err != nil {
		return nil, err
	}
	if len(ds.Contracts) == 0 {
		return nil, ErrNoContracts
	}

	out := make([]contracts.Contract, len(ds.Contracts))
	for i, c := range ds.Contracts {
		c.ID = p.qualify(c.ID)
		out[i] = c
	}
	return out, nil
}

func (p *FixtureProvider) FetchJobs(ctx context.Context) ([]contracts.Job, error) {
	ds, err := p.dataset(ctx)
	if err != nil {
		return nil, err
	}
	if len(ds.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	out := make([]contracts.Job, len(ds.Jobs))
	for i, j := range ds.Jobs {
		j.ID = p.qualify(j.ID)
		j.RequiredSkills = append([]string(nil), j.RequiredSkills...)
		out[i] = j
	}
	return out, nil
}

// FetchCandidates returns every fixture applicant; all of them applied to every job.
func (p *FixtureProvider) FetchCandidates(ctx context.Context, jobID string) ([]contracts.Candidate, error) {
	ds, err := p.dataset(ctx)
	if err != nil {
		return nil, err
	}
	if len(ds.Candidates) == 0 {
		return nil, fmt.Errorf("%w for job %s", ErrNoCandidates, jobID)
	}

	out := make([]contracts.Candidate, len(ds.Candidates))
	for i, c := range ds.Candidates {
		c.ID = p.qualify(c.ID)
		out[i] = c
	}
	return out, nil
}

func (p *FixtureProvider) dataset(ctx context.Context) (*dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return loadDataset()
}

func (p *FixtureProvider) qualify(id string) string {
	return p.name + "-" + id
}
