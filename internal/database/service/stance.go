package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/poliscope/stancetrack/internal/queue"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// StanceService resolves a pairing's stance from its evidence.
//
// Resolution is deterministic given the pairing's non-archived references:
// the stance backed by the best-scored reference wins, a tie across
// disagreeing stances yields unclear, and no references at all yields
// unknown. A stance change fans out metric jobs through the queue; the
// jobs are advisory, so enqueue failures are logged and dropped rather
// than rolling back the transaction.
type StanceService struct {
	db     *bun.DB
	queue  *queue.Client
	logger *zap.Logger
}

// NewStance creates a new stance service.
func NewStance(db *bun.DB, queue *queue.Client, logger *zap.Logger) *StanceService {
	return &StanceService{
		db:     db,
		queue:  queue,
		logger: logger.Named("stance_service"),
	}
}

// Resolve recomputes a pairing's stance and reports whether it changed.
func (s *StanceService) Resolve(ctx context.Context, pairingID int64) (enum.Stance, bool, error) {
	var (
		stance  enum.Stance
		changed bool
	)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		stance, changed, err = s.resolveTx(ctx, tx, pairingID)
		return err
	})
	if err != nil {
		return enum.StanceUnknown, false, err
	}

	return stance, changed, nil
}

// resolve runs resolution inside an existing transaction, discarding the
// outcome. Used by the vote and reference services at the tail of their
// synchronous chains.
func (s *StanceService) resolve(ctx context.Context, tx bun.IDB, pairingID int64) error {
	_, _, err := s.resolveTx(ctx, tx, pairingID)
	return err
}

func (s *StanceService) resolveTx(
	ctx context.Context, tx bun.IDB, pairingID int64,
) (enum.Stance, bool, error) {
	// A pairing or issue vanishing mid-resolution means a cascading delete
	// is in flight; the rows this resolution would write are about to go
	// away, so abort silently.
	pairing := new(types.Pairing)

	err := tx.NewSelect().
		Model(pairing).
		Where("pairing.id = ?", pairingID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Pairing vanished before resolution", zap.Int64("pairingID", pairingID))
			return enum.StanceUnknown, false, nil
		}
		return enum.StanceUnknown, false, fmt.Errorf("failed to get pairing: %w", err)
	}

	issueExists, err := tx.NewSelect().
		Model((*types.Issue)(nil)).
		Where("id = ?", pairing.IssueID).
		Exists(ctx)
	if err != nil {
		return enum.StanceUnknown, false, fmt.Errorf("failed to check issue: %w", err)
	}

	if !issueExists {
		s.logger.Debug("Issue vanished before resolution",
			zap.Int64("pairingID", pairingID),
			zap.Int64("issueID", pairing.IssueID))
		return enum.StanceUnknown, false, nil
	}

	var refs []*types.Reference

	err = tx.NewSelect().
		Model(&refs).
		Where("pairing_id = ?", pairingID).
		Where("is_archived = FALSE").
		Scan(ctx)
	if err != nil {
		return enum.StanceUnknown, false, fmt.Errorf("failed to get references: %w", err)
	}

	resolution := types.ResolveStance(refs)
	if resolution.Stance == pairing.Stance {
		return resolution.Stance, false, nil
	}

	now := time.Now()

	_, err = tx.NewUpdate().
		Model((*types.Pairing)(nil)).
		Set("stance = ?", resolution.Stance).
		Set("updated_at = ?", now).
		Where("id = ?", pairingID).
		Exec(ctx)
	if err != nil {
		return enum.StanceUnknown, false, fmt.Errorf("failed to update stance: %w", err)
	}

	// Surface the issue in recent-activity listings.
	_, err = tx.NewUpdate().
		Model((*types.Issue)(nil)).
		Set("updated_at = ?", now).
		Where("id = ?", pairing.IssueID).
		Exec(ctx)
	if err != nil {
		return enum.StanceUnknown, false, fmt.Errorf("failed to touch issue: %w", err)
	}

	s.scheduleMetricJobs(ctx, tx, pairing)

	s.logger.Info("Stance changed",
		zap.Int64("pairingID", pairingID),
		zap.String("from", pairing.Stance.String()),
		zap.String("to", resolution.Stance.String()))

	return resolution.Stance, true, nil
}

// scheduleMetricJobs lists every pairing on the changed pairing's issue and
// fans the change out to the metric queue. A failed sibling listing still
// publishes the similarity job.
func (s *StanceService) scheduleMetricJobs(ctx context.Context, tx bun.IDB, pairing *types.Pairing) {
	var siblingIDs []int64

	err := tx.NewSelect().
		Model((*types.Pairing)(nil)).
		Column("id").
		Where("issue_id = ?", pairing.IssueID).
		Scan(ctx, &siblingIDs)
	if err != nil {
		s.logger.Error("Failed to list sibling pairings for notability jobs",
			zap.Int64("issueID", pairing.IssueID),
			zap.Error(err))

		siblingIDs = nil
	}

	s.publishMetricJobs(ctx, pairing.PartyID, siblingIDs)
}

// publishMetricJobs enqueues one similarity job for the party and one
// notability job per listed pairing. The jobs re-read state when they run,
// so publishing before commit is harmless; enqueue failures are logged and
// dropped.
func (s *StanceService) publishMetricJobs(ctx context.Context, partyID int64, pairingIDs []int64) {
	if err := s.queue.PublishSimilarity(ctx, partyID); err != nil {
		s.logger.Error("Failed to enqueue similarity job",
			zap.Int64("partyID", partyID),
			zap.Error(err))
	}

	for _, pairingID := range pairingIDs {
		if err := s.queue.PublishNotability(ctx, pairingID); err != nil {
			s.logger.Error("Failed to enqueue notability job",
				zap.Int64("pairingID", pairingID),
				zap.Error(err))
		}
	}
}
