package pipeline

import (
	"context"

	"staffline-agent/src/config"
	"staffline-agent/src/logger"
)

// Mode is how the agents are deployed.
type Mode int

const (
	// LocalMode runs every agent in-process over the in-memory broker.
	LocalMode Mode = iota
	// AgenticMode publishes to Redpanda; agents run in their own processes.
	AgenticMode
)

func (m Mode) String() string {
	switch m {
	case LocalMode:
		return "local"
	case AgenticMode:
		return "agentic"
	default:
		return "unknown"
	}
}

// DetectMode selects agentic mode when Redpanda brokers are configured.
func DetectMode(cfg *config.Config) Mode {
	if cfg.Agentic() {
		return AgenticMode
	}
	return LocalMode
}

// New creates the pipeline for the detected mode.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Pipeline, error) {
	if DetectMode(cfg) == AgenticMode {
		return NewAgenticPipeline(ctx, cfg)
	}
	return NewLocalPipeline(ctx, cfg, log)
}
