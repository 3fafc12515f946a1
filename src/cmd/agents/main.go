// Package main provides the staffline-agents binary: the compliance, recruiting,
// planning and recorder agents for agentic mode.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"staffline-agent/src/agents"
	"staffline-agent/src/ats"
	"staffline-agent/src/broker"
	"staffline-agent/src/config"
	"staffline-agent/src/logger"
	"staffline-agent/src/pipeline"
	"staffline-agent/src/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Verify we're in distributed mode
	if !cfg.Agentic() {
		fmt.Fprintln(os.Stderr, "ERROR: REDPANDA_BROKERS environment variable is required for staffline-agents")
		fmt.Fprintln(os.Stderr, "Example: export REDPANDA_BROKERS=localhost:19092")
		os.Exit(1)
	}

	log := logger.New(logger.Options{Environment: cfg.AppEnv, Level: cfg.LogLevel})

	log.Info("Starting Staffline agents")
	log.Info("Redpanda brokers: %v", cfg.RedpandaBrokers)

	provider, err := ats.Resolve(cfg.ATSSystem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", ats.WrapError(err))
		os.Exit(1)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	brk, err := broker.NewRedpandaBroker(cfg.RedpandaBrokers, broker.WithLogger(log), broker.WithClientID(cfg.ConsumerGroup("agents")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create broker: %v\n", err)
		os.Exit(1)
	}
	defer brk.Close()

	if err := brk.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to reach Redpanda: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	coord, err := pipeline.NewCoordinator(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create coordinator: %v\n", err)
		os.Exit(1)
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	pipeline.Start(ctx, brk, st, coord, provider, log, agents.WithGroupPrefix(cfg.ConsumerGroupPrefix))
	log.Info("Agents started (default ATS %s), waiting for contracts...", provider.Name())

	<-sigChan
	log.Info("Shutdown signal received, stopping agents...")
	cancel()

	log.Info("Staffline agents stopped")
}
