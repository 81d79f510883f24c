package queue_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/poliscope/stancetrack/internal/queue"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*queue.Client, func()) {
	t.Helper()
	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	// Create test logger
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	// Create queue client
	q := queue.NewClient(client, logger)

	cleanup := func() {
		mr.Close()
		client.Close()
		logger.Sync()
	}

	return q, cleanup
}

func TestPublishSimilarity(t *testing.T) {
	t.Parallel()
	q, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	err := q.PublishSimilarity(ctx, 42)
	require.NoError(t, err)

	// Verify queue length
	length, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, length)
}

func TestPublishNotability(t *testing.T) {
	t.Parallel()
	q, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	err := q.PublishNotability(ctx, 7)
	require.NoError(t, err)

	jobs, err := q.Pop(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, queue.JobNotability, jobs[0].Kind)
	assert.Equal(t, int64(7), jobs[0].PairingID)
}

func TestPopDrainsQueue(t *testing.T) {
	t.Parallel()
	q, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	require.NoError(t, q.PublishSimilarity(ctx, 1))
	require.NoError(t, q.PublishSimilarity(ctx, 2))
	require.NoError(t, q.PublishNotability(ctx, 3))

	jobs, err := q.Pop(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	// Queue is empty afterwards
	length, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, length)

	jobs, err = q.Pop(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestPopRespectsBatchSize(t *testing.T) {
	t.Parallel()
	q, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	for i := range 5 {
		require.NoError(t, q.PublishNotability(ctx, int64(i+1)))
	}

	jobs, err := q.Pop(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	length, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, length)
}

func TestPopPreservesEnqueueOrder(t *testing.T) {
	t.Parallel()
	q, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	require.NoError(t, q.PublishNotability(ctx, 10))
	require.NoError(t, q.PublishNotability(ctx, 20))
	require.NoError(t, q.PublishNotability(ctx, 30))

	jobs, err := q.Pop(ctx, 3)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, int64(10), jobs[0].PairingID)
	assert.Equal(t, int64(20), jobs[1].PairingID)
	assert.Equal(t, int64(30), jobs[2].PairingID)
}
