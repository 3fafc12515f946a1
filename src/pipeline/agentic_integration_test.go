//go:build integration

package pipeline

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"staffline-agent/src/agents"
	"staffline-agent/src/ats"
	"staffline-agent/src/broker"
	"staffline-agent/src/config"
	"staffline-agent/src/logger"
	"staffline-agent/src/store"
)

// TestAgenticPipelineIntegration runs the agents against a real Redpanda cluster and
// a persistent store, then submits through a separate AgenticPipeline.
func TestAgenticPipelineIntegration(t *testing.T) {
	brokers := os.Getenv("REDPANDA_BROKERS")
	if brokers == "" {
		t.Skip("REDPANDA_BROKERS not set, skipping integration test")
	}
	if os.Getenv("POSTGRES_DSN") == "" && os.Getenv("REDIS_URL") == "" {
		t.Skip("POSTGRES_DSN or REDIS_URL not set, skipping integration test")
	}

	cfg := &config.Config{
		RedpandaBrokers:     strings.Split(brokers, ","),
		PostgresDSN:         os.Getenv("POSTGRES_DSN"),
		RedisURL:            os.Getenv("REDIS_URL"),
		RedisTTL:            time.Hour,
		ATSSystem:           ats.Greenhouse,
		AnalysisCacheSize:   16,
		ConsumerGroupPrefix: "staffline-it-" + time.Now().Format("150405"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	brk, err := broker.NewRedpandaBroker(cfg.RedpandaBrokers)
	if err != nil {
		t.Fatalf("NewRedpandaBroker failed: %v", err)
	}
	defer brk.Close()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	defer st.Close()

	log := logger.NewSilentLogger()
	coord, err := NewCoordinator(ctx, cfg, log)
	if err != nil {
		t.Fatalf("NewCoordinator failed: %v", err)
	}
	provider, _ := ats.Resolve(cfg.ATSSystem)
	Start(ctx, brk, st, coord, provider, log, agents.WithGroupPrefix(cfg.ConsumerGroupPrefix))

	p, err := NewAgenticPipeline(ctx, cfg)
	if err != nil {
		t.Fatalf("NewAgenticPipeline failed: %v", err)
	}
	defer p.Close()

	requestID, err := p.Submit(ctx, ats.Lever)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	status, err := Wait(ctx, p, requestID, 250*time.Millisecond)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if status.Source != ats.Lever {
		t.Errorf("source = %q, expected lever", status.Source)
	}

	recs, err := p.Recommendations(ctx, requestID)
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) < 3 {
		t.Errorf("expected at least 3 recommendations, got %d", len(recs))
	}
}
