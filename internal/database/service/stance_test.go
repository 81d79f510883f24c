package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/poliscope/stancetrack/internal/queue"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStanceTest(t *testing.T) (*StanceService, *queue.Client, func()) {
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

	logger := zap.NewNop()
	q := queue.NewClient(client, logger)

	// The fan-out never touches the database, only the queue.
	svc := NewStance(nil, q, logger)

	cleanup := func() {
		mr.Close()
		client.Close()
	}

	return svc, q, cleanup
}

func TestPublishMetricJobsFansOutPerSibling(t *testing.T) {
	t.Parallel()
	svc, q, cleanup := setupStanceTest(t)
	defer cleanup()

	ctx := t.Context()

	svc.publishMetricJobs(ctx, 7, []int64{10, 20, 30})

	jobs, err := q.Pop(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 4)

	var (
		similarityParties  []int64
		notabilityPairings []int64
	)

	for _, job := range jobs {
		switch job.Kind {
		case queue.JobSimilarity:
			similarityParties = append(similarityParties, job.PartyID)
		case queue.JobNotability:
			notabilityPairings = append(notabilityPairings, job.PairingID)
		}
	}

	// Exactly one similarity job for the party whose stance changed and one
	// notability job per pairing on the issue.
	assert.Equal(t, []int64{7}, similarityParties)
	assert.ElementsMatch(t, []int64{10, 20, 30}, notabilityPairings)
}

func TestPublishMetricJobsWithoutSiblings(t *testing.T) {
	t.Parallel()
	svc, q, cleanup := setupStanceTest(t)
	defer cleanup()

	ctx := t.Context()

	svc.publishMetricJobs(ctx, 42, nil)

	jobs, err := q.Pop(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, queue.JobSimilarity, jobs[0].Kind)
	assert.Equal(t, int64(42), jobs[0].PartyID)
}
