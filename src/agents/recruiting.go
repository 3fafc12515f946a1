package agents

import (
	"context"
	"errors"

	"staffline-agent/src/ats"
	"staffline-agent/src/broker"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/store"
)

// RecruitingAgent matches ATS candidates against the open job whenever compliance
// asks it to source candidates.
type RecruitingAgent struct {
	base
	coordinator *coordinate.Coordinator
	provider    ats.Provider
}

// NewRecruitingAgent creates a recruiting agent. provider serves requests whose
// ATS cannot be looked up in the store.
func NewRecruitingAgent(brk broker.Broker, coord *coordinate.Coordinator, provider ats.Provider, opts ...Option) *RecruitingAgent {
	return &RecruitingAgent{
		base:        newBase("RecruitingAgent", brk, opts),
		coordinator: coord,
		provider:    provider,
	}
}

// Run consumes staffline.coordination until ctx is cancelled.
func (a *RecruitingAgent) Run(ctx context.Context) error {
	return a.consume(ctx, contracts.TopicCoordination, a.processCoordination)
}

func (a *RecruitingAgent) processCoordination(ctx context.Context, msg broker.Message) error {
	event, mine, err := decodeCoordination(msg, contracts.AgentRecruiting, contracts.ActionSourceCandidates)
	if err != nil || !mine {
		return err
	}
	requestID := event.SessionID

	if err := a.source(ctx, requestID); err != nil {
		a.markFailed(ctx, requestID, err)
		return err
	}
	return nil
}

func (a *RecruitingAgent) source(ctx context.Context, requestID string) error {
	provider, err := a.providerFor(ctx, requestID)
	if err != nil {
		return err
	}

	jobs, err := provider.FetchJobs(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return ats.ErrNoJobs
	}
	job := jobs[0]

	candidates, err := provider.FetchCandidates(ctx, job.ID)
	if err != nil {
		return err
	}

	a.logger.Info("[%s] Request %s: matching %d candidates from %s for %s", a.name, requestID, len(candidates), provider.Name(), job.ID)

	session := coordinate.NewSession(requestID)
	res, err := a.coordinator.ProcessCandidateMatching(ctx, session, job, candidates)
	if err != nil {
		return err
	}

	return a.publish(ctx, requestID, res)
}

// providerFor uses the ATS the request was submitted from, when known.
func (a *RecruitingAgent) providerFor(ctx context.Context, requestID string) (ats.Provider, error) {
	if a.store == nil {
		return a.provider, nil
	}

	status, err := a.store.GetRequestStatus(ctx, requestID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && status.Source == "") {
		return a.provider, nil
	}
	if err != nil {
		return nil, err
	}
	return ats.Resolve(status.Source)
}
