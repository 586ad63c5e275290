//go:build api

package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests clears all data between tests.
// Call this at the start of each test function for isolation.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	err := ts.MongoDB.DropCollections(ctx)
	require.NoError(t, err, "failed to drop MongoDB collections")

	err = ts.Redis.FlushDB(ctx)
	require.NoError(t, err, "failed to flush Redis")
}

// CleanupMongoDB clears only MongoDB collections.
func (ts *TestServer) CleanupMongoDB(t *testing.T) {
	t.Helper()

	err := ts.MongoDB.DropCollections(context.Background())
	require.NoError(t, err, "failed to drop MongoDB collections")
}

// CleanupRedis clears only the Redis cache.
func (ts *TestServer) CleanupRedis(t *testing.T) {
	t.Helper()

	err := ts.Redis.FlushDB(context.Background())
	require.NoError(t, err, "failed to flush Redis")
}
