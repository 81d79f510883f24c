package metrics

import (
	"context"
	"time"

	"github.com/poliscope/stancetrack/internal/database"
	"github.com/poliscope/stancetrack/internal/queue"
	"github.com/poliscope/stancetrack/internal/setup"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Worker drains the metric job queue and recomputes derived metrics.
//
// Jobs are at-least-once and idempotent: every handler re-reads current
// state, so duplicates and reordering are harmless. A failed job is logged
// and dropped; the next stance change enqueues a replacement.
type Worker struct {
	db           database.Client
	queue        *queue.Client
	logger       *zap.Logger
	batchSize    int
	pollInterval time.Duration
	concurrency  int
}

// New creates a new metrics worker.
func New(app *setup.App, logger *zap.Logger) *Worker {
	return &Worker{
		db:           app.DB,
		queue:        app.Queue,
		logger:       logger.Named("metrics_worker"),
		batchSize:    app.Config.Worker.BatchSize,
		pollInterval: time.Duration(app.Config.Worker.PollInterval) * time.Millisecond,
		concurrency:  app.Config.Worker.Concurrency,
	}
}

// Start begins the worker's main loop:
// 1. Claims a batch of jobs from the queue
// 2. Dispatches them across a bounded pool
// 3. Sleeps when the queue is drained
// 4. Repeats until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Metrics worker started",
		zap.Int("batchSize", w.batchSize),
		zap.Int("concurrency", w.concurrency))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Context cancelled, stopping worker")
			return
		default:
		}

		jobs, err := w.queue.Pop(ctx, w.batchSize)
		if err != nil {
			w.logger.Error("Failed to claim jobs", zap.Error(err))
			time.Sleep(w.pollInterval)
			continue
		}

		if len(jobs) == 0 {
			time.Sleep(w.pollInterval)
			continue
		}

		w.processBatch(ctx, jobs)
	}
}

// processBatch runs a batch of jobs with bounded concurrency. Job errors
// are logged and dropped, never propagated.
func (w *Worker) processBatch(ctx context.Context, jobs []*queue.Job) {
	p := pool.New().WithContext(ctx).WithMaxGoroutines(w.concurrency)

	for _, job := range jobs {
		p.Go(func(ctx context.Context) error {
			w.processJob(ctx, job)
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		w.logger.Error("Batch dispatch failed", zap.Error(err))
	}

	w.logger.Debug("Finished processing batch", zap.Int("jobs", len(jobs)))
}

func (w *Worker) processJob(ctx context.Context, job *queue.Job) {
	var err error

	switch job.Kind {
	case queue.JobSimilarity:
		err = w.db.Service().Metric().RecomputeSimilarity(ctx, job.PartyID)
	case queue.JobNotability:
		err = w.db.Service().Metric().RecomputeNotability(ctx, job.PairingID)
	default:
		w.logger.Warn("Unknown job kind",
			zap.String("jobID", job.ID.String()),
			zap.String("kind", string(job.Kind)))
		return
	}

	if err != nil {
		w.logger.Error("Metric job failed",
			zap.String("jobID", job.ID.String()),
			zap.String("kind", string(job.Kind)),
			zap.Int64("partyID", job.PartyID),
			zap.Int64("pairingID", job.PairingID),
			zap.Error(err))
	}
}
