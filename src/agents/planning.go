package agents

import (
	"context"

	"staffline-agent/src/broker"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
)

// PlanningAgent turns capacity planning hand-offs into capacity recommendations.
type PlanningAgent struct {
	base
	coordinator *coordinate.Coordinator
}

// NewPlanningAgent creates a project management agent.
func NewPlanningAgent(brk broker.Broker, coord *coordinate.Coordinator, opts ...Option) *PlanningAgent {
	return &PlanningAgent{
		base:        newBase("PlanningAgent", brk, opts),
		coordinator: coord,
	}
}

// Run consumes staffline.coordination until ctx is cancelled.
func (a *PlanningAgent) Run(ctx context.Context) error {
	return a.consume(ctx, contracts.TopicCoordination, a.processCoordination)
}

func (a *PlanningAgent) processCoordination(ctx context.Context, msg broker.Message) error {
	event, mine, err := decodeCoordination(msg, contracts.AgentProjectManagement, contracts.ActionCapacityPlanning)
	if err != nil || !mine {
		return err
	}
	requestID := event.SessionID

	var payload contracts.CapacityPlanningPayload
	if err := event.DecodeData(&payload); err != nil {
		a.markFailed(ctx, requestID, err)
		return err
	}

	a.logger.Info("[%s] Request %s: planning capacity for %d candidate(s)", a.name, requestID, payload.MatchedCandidates)

	session := coordinate.NewSession(requestID)
	res, err := a.coordinator.ProcessCapacityPlanning(ctx, session, contracts.ProjectData{
		JobID:             payload.JobID,
		MatchedCandidates: payload.MatchedCandidates,
	})
	if err != nil {
		a.markFailed(ctx, requestID, err)
		return err
	}

	return a.publish(ctx, requestID, res)
}
