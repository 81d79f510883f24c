package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poliscope/stancetrack/internal/database/dbretry"
	"github.com/poliscope/stancetrack/internal/database/models"
	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// MetricService recomputes the derived similarity and notability metrics.
//
// Both entry points are job handlers: they re-read current state, so a job
// queued against a stale snapshot still produces a correct result, and
// running the same job twice is harmless.
type MetricService struct {
	db      *bun.DB
	pairing *models.PairingModel
	party   *models.PartyModel
	logger  *zap.Logger
}

// NewMetric creates a new metric service.
func NewMetric(db *bun.DB, pairing *models.PairingModel, party *models.PartyModel, logger *zap.Logger) *MetricService {
	return &MetricService{
		db:      db,
		pairing: pairing,
		party:   party,
		logger:  logger.Named("metric_service"),
	}
}

// RecomputeNotability recalculates a pairing's notability from the current
// stance distribution on its issue. A pairing deleted since the job was
// queued is skipped.
func (s *MetricService) RecomputeNotability(ctx context.Context, pairingID int64) error {
	pairing, err := s.pairing.GetByID(ctx, pairingID)
	if err != nil {
		if errors.Is(err, types.ErrPairingNotFound) {
			s.logger.Debug("Pairing vanished before notability recompute",
				zap.Int64("pairingID", pairingID))
			return nil
		}
		return err
	}

	counts, err := s.pairing.StanceCounts(ctx, pairing.IssueID)
	if err != nil {
		return err
	}

	notability := types.Notability(pairing.Stance, counts)

	if err := s.pairing.UpdateNotability(ctx, pairingID, notability); err != nil {
		return err
	}

	s.logger.Debug("Recomputed notability",
		zap.Int64("pairingID", pairingID),
		zap.Float64("notability", notability))

	return nil
}

// RecomputeSimilarity rebuilds a party's similarity snapshots against every
// other party. Previous snapshots for the party are archived and fresh ones
// inserted in one transaction, so pairs that became undefined simply stop
// having a current record.
func (s *MetricService) RecomputeSimilarity(ctx context.Context, partyID int64) error {
	set, err := s.pairing.StanceSet(ctx, partyID)
	if err != nil {
		return err
	}

	others, err := s.party.GetOthers(ctx, partyID)
	if err != nil {
		return err
	}

	now := time.Now()
	records := make([]*types.PartySimilarity, 0, len(others))

	for _, other := range others {
		otherSet, err := s.pairing.StanceSet(ctx, other.ID)
		if err != nil {
			return err
		}

		value, defined := types.Similarity(set, otherSet)
		if !defined {
			continue
		}

		percentage := value * 100
		if percentage < 0 || percentage > 100 {
			return fmt.Errorf("%w: party %d vs %d: %f",
				types.ErrInvalidSimilarity, partyID, other.ID, percentage)
		}

		records = append(records, &types.PartySimilarity{
			FirstPartyID:  partyID,
			SecondPartyID: other.ID,
			Similarity:    percentage,
			CreatedAt:     now,
		})
	}

	// The snapshot swap is idempotent, so it can retry on transient
	// database errors without coordination.
	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*types.PartySimilarity)(nil)).
			Set("is_archived = TRUE").
			Where("first_party_id = ?", partyID).
			Where("is_archived = FALSE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to archive similarity snapshots: %w", err)
		}

		if len(records) == 0 {
			return nil
		}

		if _, err := tx.NewInsert().Model(&records).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert similarity snapshots: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Recomputed similarity",
		zap.Int64("partyID", partyID),
		zap.Int("snapshots", len(records)))

	return nil
}
