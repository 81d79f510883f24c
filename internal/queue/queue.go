package queue

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const (
	// metricsQueueKey is the Redis sorted set holding pending metric jobs,
	// scored by enqueue time for FIFO processing.
	metricsQueueKey = "metrics:jobs"
)

// JobKind identifies which metric a queued job recomputes.
type JobKind string

const (
	// JobSimilarity recomputes a party's similarity snapshots against all
	// other parties.
	JobSimilarity JobKind = "similarity"

	// JobNotability recomputes the notability score of a single pairing.
	JobNotability JobKind = "notability"
)

// Job is one pending metric recomputation.
//
// Jobs are fire-and-forget: they carry no result channel and no retry
// budget. A job that fails is logged and dropped; the next stance change
// on the same pairing enqueues a fresh one.
type Job struct {
	ID         uuid.UUID `json:"id"`
	Kind       JobKind   `json:"kind"`
	PartyID    int64     `json:"partyId,omitempty"`
	PairingID  int64     `json:"pairingId,omitempty"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// Client manages the metric job queue backed by a Redis sorted set.
type Client struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewClient initializes a queue client with its Redis connection.
func NewClient(client rueidis.Client, logger *zap.Logger) *Client {
	return &Client{
		client: client,
		logger: logger.Named("queue"),
	}
}

// PublishSimilarity enqueues a similarity recomputation for a party.
func (c *Client) PublishSimilarity(ctx context.Context, partyID int64) error {
	return c.publish(ctx, &Job{
		ID:         uuid.New(),
		Kind:       JobSimilarity,
		PartyID:    partyID,
		EnqueuedAt: time.Now(),
	})
}

// PublishNotability enqueues a notability recomputation for a pairing.
func (c *Client) PublishNotability(ctx context.Context, pairingID int64) error {
	return c.publish(ctx, &Job{
		ID:         uuid.New(),
		Kind:       JobNotability,
		PairingID:  pairingID,
		EnqueuedAt: time.Now(),
	})
}

func (c *Client) publish(ctx context.Context, job *Job) error {
	jobJSON, err := sonic.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = c.client.Do(ctx,
		c.client.B().Zadd().Key(metricsQueueKey).ScoreMember().
			ScoreMember(float64(job.EnqueuedAt.UnixNano()), string(jobJSON)).Build(),
	).Error()
	if err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}

	c.logger.Debug("Enqueued metric job",
		zap.String("jobID", job.ID.String()),
		zap.String("kind", string(job.Kind)))

	return nil
}

// Pop removes and returns up to batchSize jobs in enqueue order. Returns
// an empty slice when the queue is drained.
func (c *Client) Pop(ctx context.Context, batchSize int) ([]*Job, error) {
	raw, err := c.client.Do(ctx,
		c.client.B().Zrange().Key(metricsQueueKey).
			Min("0").Max(strconv.Itoa(batchSize-1)).Build(),
	).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	jobs := make([]*Job, 0, len(raw))
	for _, member := range raw {
		err = c.client.Do(ctx,
			c.client.B().Zrem().Key(metricsQueueKey).Member(member).Build(),
		).Error()
		if err != nil {
			return nil, fmt.Errorf("failed to remove job from queue: %w", err)
		}

		var job Job
		if err := sonic.Unmarshal([]byte(member), &job); err != nil {
			// Malformed entries are dropped so they cannot wedge the queue.
			c.logger.Error("Dropping malformed queue entry", zap.Error(err))
			continue
		}
		jobs = append(jobs, &job)
	}

	return jobs, nil
}

// Len returns the number of pending jobs.
func (c *Client) Len(ctx context.Context) (int, error) {
	count, err := c.client.Do(ctx,
		c.client.B().Zcard().Key(metricsQueueKey).Build(),
	).ToInt64()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return int(count), nil
}
