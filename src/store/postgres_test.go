package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

// Runs against a real database when STAFFLINE_TEST_POSTGRES_DSN is set.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("STAFFLINE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("STAFFLINE_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, dsn)
	if err != nil {
		t.Fatalf("NewPostgresStore failed: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	exerciseStore(t, store, "test-"+uuid.NewString())
}
