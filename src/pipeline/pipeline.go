// Package pipeline wires the staffing agents to a broker and a store.
// It is shared by the CLI, the agents process and the MCP server.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"staffline-agent/src/agents"
	"staffline-agent/src/analyze"
	"staffline-agent/src/ats"
	"staffline-agent/src/broker"
	"staffline-agent/src/config"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/logger"
	"staffline-agent/src/store"
)

// Pipeline submits contracts to the agents and reports on their progress.
type Pipeline interface {
	// Submit pulls the first contract from the named ATS and returns its request id.
	Submit(ctx context.Context, atsLabel string) (string, error)

	Status(ctx context.Context, requestID string) (*contracts.RequestStatus, error)
	Coordinations(ctx context.Context, requestID string) ([]contracts.AgentCoordination, error)
	Recommendations(ctx context.Context, requestID string) ([]contracts.Recommendation, error)

	Close() error
}

// NewCoordinator builds the analyzer and coordinator described by cfg.
func NewCoordinator(ctx context.Context, cfg *config.Config, log logger.Logger) (*coordinate.Coordinator, error) {
	analyzer, err := analyze.NewAnalyzer(cfg.AnalysisCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return coordinate.New(ctx, analyzer, coordinate.WithLogger(log))
}

// Start starts the compliance, recruiting, planning and recorder agents as goroutines
// and returns once all of them have subscribed. Errors are logged to stderr even when
// log is silent.
func Start(ctx context.Context, brk broker.Broker, st store.Store, coord *coordinate.Coordinator, provider ats.Provider, log logger.Logger, opts ...agents.Option) {
	var subscribed sync.WaitGroup
	subscribed.Add(4)
	var once [4]sync.Once

	opts = append([]agents.Option{agents.WithLogger(log), agents.WithStore(st)}, opts...)

	// with gives agent i the shared options plus its subscription signal.
	with := func(i int) []agents.Option {
		return append(opts[:len(opts):len(opts)], agents.WithSubscribed(func() { once[i].Do(subscribed.Done) }))
	}

	runners := []struct {
		name  string
		agent interface{ Run(context.Context) error }
	}{
		{"Compliance", agents.NewComplianceAgent(brk, coord, with(0)...)},
		{"Recruiting", agents.NewRecruitingAgent(brk, coord, provider, with(1)...)},
		{"Planning", agents.NewPlanningAgent(brk, coord, with(2)...)},
		{"Recorder", agents.NewRecorder(brk, st, with(3)...)},
	}

	for i, r := range runners {
		go func() {
			// Run may return before subscribing; never leave Start waiting.
			defer once[i].Do(subscribed.Done)
			if err := r.agent.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "[Pipeline] %s agent error: %v\n", r.name, err)
			}
		}()
	}
	subscribed.Wait()
}

// submitter publishes contract submissions and reads results back from the store.
type submitter struct {
	broker broker.Broker
	store  store.Store
	now    func() time.Time
}

// Submit records the request before publishing so agents can always find it.
func (s *submitter) Submit(ctx context.Context, atsLabel string) (string, error) {
	provider, err := ats.Resolve(atsLabel)
	if err != nil {
		return "", err
	}
	fetched, err := provider.FetchContracts(ctx)
	if err != nil {
		return "", err
	}
	if len(fetched) == 0 {
		return "", ats.ErrNoContracts
	}

	requestID := uuid.Must(uuid.NewV7()).String()
	if err := s.store.CreateRequest(ctx, requestID, provider.Name()); err != nil {
		return "", fmt.Errorf("failed to create request record: %w", err)
	}

	data, err := json.Marshal(contracts.ContractSubmission{
		RequestID: requestID,
		ATSSystem: provider.Name(),
		Contract:  fetched[0],
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal submission: %w", err)
	}

	if err := s.broker.Publish(ctx, contracts.TopicContracts, requestID, data); err != nil {
		return "", fmt.Errorf("failed to publish submission: %w", err)
	}

	return requestID, nil
}

func (s *submitter) Status(ctx context.Context, requestID string) (*contracts.RequestStatus, error) {
	return s.store.GetRequestStatus(ctx, requestID)
}

func (s *submitter) Coordinations(ctx context.Context, requestID string) ([]contracts.AgentCoordination, error) {
	return s.store.GetCoordinations(ctx, requestID)
}

func (s *submitter) Recommendations(ctx context.Context, requestID string) ([]contracts.Recommendation, error) {
	return s.store.GetRecommendations(ctx, requestID)
}

func (s *submitter) Close() error {
	if err := s.broker.Close(); err != nil {
		return err
	}
	return s.store.Close()
}

// Wait polls until the request completes or fails.
func Wait(ctx context.Context, p Pipeline, requestID string, interval time.Duration) (*contracts.RequestStatus, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := p.Status(ctx, requestID)
		if err != nil {
			return nil, err
		}
		switch status.Status {
		case contracts.StatusCompleted:
			return status, nil
		case contracts.StatusFailed:
			return status, fmt.Errorf("request %s failed at stage %s", requestID, status.Stage)
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
