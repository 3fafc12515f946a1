package store

import (
	"context"
	"testing"

	"staffline-agent/src/config"
)

func TestOpenDefaultsToMemory(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", s)
	}
}

func TestOpenRejectsBadRedisURL(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{RedisURL: "not-a-url"})
	if err == nil {
		t.Error("Expected error for malformed redis url")
	}
}
