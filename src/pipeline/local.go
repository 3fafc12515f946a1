package pipeline

import (
	"context"
	"fmt"
	"time"

	"staffline-agent/src/ats"
	"staffline-agent/src/broker"
	"staffline-agent/src/config"
	"staffline-agent/src/logger"
	"staffline-agent/src/store"
)

// LocalPipeline runs every agent in this process over the in-memory broker.
// Results live in the configured store, in memory unless Postgres or Redis is set.
type LocalPipeline struct {
	submitter
	cancel context.CancelFunc
}

var _ Pipeline = (*LocalPipeline)(nil)

// NewLocalPipeline starts the agents; Close stops them.
func NewLocalPipeline(ctx context.Context, cfg *config.Config, log logger.Logger) (*LocalPipeline, error) {
	provider, err := ats.Resolve(cfg.ATSSystem)
	if err != nil {
		return nil, err
	}
	coord, err := NewCoordinator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	brk := broker.NewInMemoryBroker()
	runCtx, cancel := context.WithCancel(context.Background())
	Start(runCtx, brk, st, coord, provider, log)

	return &LocalPipeline{
		submitter: submitter{broker: brk, store: st, now: time.Now},
		cancel:    cancel,
	}, nil
}

// Close stops the agents and releases the broker and store.
func (p *LocalPipeline) Close() error {
	p.cancel()
	return p.submitter.Close()
}
