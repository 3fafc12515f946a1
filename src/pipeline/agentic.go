package pipeline

import (
	"context"
	"fmt"
	"time"

	"staffline-agent/src/broker"
	"staffline-agent/src/config"
	"staffline-agent/src/store"
)

// AgenticPipeline publishes to Redpanda and reads results from Postgres or Redis.
// The agents themselves run in the staffline-agents process.
type AgenticPipeline struct {
	submitter
}

var _ Pipeline = (*AgenticPipeline)(nil)

// NewAgenticPipeline connects to the brokers and the persistent store.
func NewAgenticPipeline(ctx context.Context, cfg *config.Config) (*AgenticPipeline, error) {
	if !cfg.HasPersistentStore() {
		return nil, fmt.Errorf("agentic mode requires POSTGRES_DSN or REDIS_URL")
	}

	redpandaBroker, err := broker.NewRedpandaBroker(cfg.RedpandaBrokers)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redpanda broker: %w", err)
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		redpandaBroker.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &AgenticPipeline{
		submitter: submitter{broker: redpandaBroker, store: st, now: time.Now},
	}, nil
}
