package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
)

// ReferenceService handles evidence submission and archival.
type ReferenceService struct {
	db     *bun.DB
	stance *StanceService
	logger *zap.Logger
}

// NewReference creates a new reference service.
func NewReference(db *bun.DB, stance *StanceService, logger *zap.Logger) *ReferenceService {
	return &ReferenceService{
		db:     db,
		stance: stance,
		logger: logger.Named("reference_service"),
	}
}

// Submit creates a reference and casts the author's up-vote on it, running
// the full score and stance chain in one transaction. A non-archived
// reference with the same (pairing, url, stance) already existing surfaces
// as ErrDuplicateReference.
func (s *ReferenceService) Submit(ctx context.Context, ref *types.Reference) error {
	if ref.CreatedAt.IsZero() {
		ref.CreatedAt = time.Now()
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(ref).Exec(ctx); err != nil {
			var pgErr pgdriver.Error
			if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
				return types.ErrDuplicateReference
			}
			return fmt.Errorf("failed to insert reference: %w", err)
		}

		// The author's submission doubles as their endorsement. Their
		// opinion elsewhere on the pairing moves to the new reference.
		affected, err := archivePairingVotes(ctx, tx, ref.PairingID, ref.AuthorID)
		if err != nil {
			return err
		}

		if err := insertVote(ctx, tx, enum.SubjectKindReference, ref.ID, ref.AuthorID, enum.VoteKindUp); err != nil {
			return err
		}

		score, err := refreshScore(ctx, tx, ref.ID)
		if err != nil {
			return err
		}
		ref.Score = score

		for _, siblingID := range affected {
			if siblingID == ref.ID {
				continue
			}
			if _, err := refreshScore(ctx, tx, siblingID); err != nil {
				return err
			}
		}

		return s.stance.resolve(ctx, tx, ref.PairingID)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Reference submitted",
		zap.Int64("referenceID", ref.ID),
		zap.Int64("pairingID", ref.PairingID),
		zap.String("stance", ref.Stance.String()))

	return nil
}

// Archive hides a reference from resolution and re-resolves the pairing.
func (s *ReferenceService) Archive(ctx context.Context, refID int64) error {
	return s.setArchived(ctx, refID, true)
}

// Unarchive restores a reference into resolution and re-resolves the pairing.
func (s *ReferenceService) Unarchive(ctx context.Context, refID int64) error {
	return s.setArchived(ctx, refID, false)
}

func (s *ReferenceService) setArchived(ctx context.Context, refID int64, archived bool) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ref, err := getReference(ctx, tx, refID)
		if err != nil {
			return err
		}

		if ref.IsArchived == archived {
			return nil
		}

		_, err = tx.NewUpdate().
			Model((*types.Reference)(nil)).
			Set("is_archived = ?", archived).
			Where("id = ?", refID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to set reference archival: %w", err)
		}

		return s.stance.resolve(ctx, tx, ref.PairingID)
	})
}
