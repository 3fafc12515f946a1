package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRedisStoreKeys(t *testing.T) {
	if got := requestKey("abc"); got != "staffline:request:abc" {
		t.Errorf("requestKey = %q", got)
	}
	if got := coordinationsKey("abc"); got != "staffline:request:abc:coordinations" {
		t.Errorf("coordinationsKey = %q", got)
	}
	if got := recommendationsKey("abc"); got != "staffline:request:abc:recommendations" {
		t.Errorf("recommendationsKey = %q", got)
	}
}

// Runs against a real server when STAFFLINE_TEST_REDIS_URL is set.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("STAFFLINE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("STAFFLINE_TEST_REDIS_URL not set")
	}

	store, err := OpenRedis(context.Background(), url, time.Minute)
	if err != nil {
		t.Fatalf("OpenRedis failed: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store, "test-"+uuid.NewString())
}
