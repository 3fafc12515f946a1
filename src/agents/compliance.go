package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"staffline-agent/src/broker"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
)

// ComplianceAgent analyzes submitted contracts and asks recruiting to source
// candidates for the roles it finds.
type ComplianceAgent struct {
	base
	coordinator *coordinate.Coordinator
}

// NewComplianceAgent creates a compliance agent.
func NewComplianceAgent(brk broker.Broker, coord *coordinate.Coordinator, opts ...Option) *ComplianceAgent {
	return &ComplianceAgent{
		base:        newBase("ComplianceAgent", brk, opts),
		coordinator: coord,
	}
}

// Run consumes staffline.contracts until ctx is cancelled.
func (a *ComplianceAgent) Run(ctx context.Context) error {
	return a.consume(ctx, contracts.TopicContracts, a.processSubmission)
}

func (a *ComplianceAgent) processSubmission(ctx context.Context, msg broker.Message) error {
	var sub contracts.ContractSubmission
	if err := json.Unmarshal(msg.Value, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	if sub.RequestID == "" {
		sub.RequestID = msg.Key
	}

	a.logger.Info("[%s] Request %s: analyzing contract %s", a.name, sub.RequestID, sub.Contract.ID)

	session := coordinate.NewSession(sub.RequestID)
	res, err := a.coordinator.ProcessNewContract(ctx, session, sub.Contract)
	if err != nil {
		a.markFailed(ctx, sub.RequestID, err)
		return err
	}

	return a.publish(ctx, sub.RequestID, res)
}
