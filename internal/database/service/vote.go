package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/poliscope/stancetrack/pkg/utils"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
)

// VoteService handles the vote ledger and score maintenance.
//
// Every mutation runs its full synchronous chain in one transaction:
// ledger update, Wilson score recomputation for the affected references,
// then stance resolution for the owning pairing. Readers therefore never
// observe a vote without its score and stance effects.
type VoteService struct {
	db     *bun.DB
	stance *StanceService
	logger *zap.Logger
}

// NewVote creates a new vote service.
func NewVote(db *bun.DB, stance *StanceService, logger *zap.Logger) *VoteService {
	return &VoteService{
		db:     db,
		stance: stance,
		logger: logger.Named("vote_service"),
	}
}

// Cast records a voter's judgment on a reference and returns the
// reference's updated score.
//
// A voter holds one opinion per pairing: any active votes they have on
// sibling references are archived before the new vote is inserted. A
// concurrent insert racing past the archive step trips the partial unique
// index and surfaces as ErrDuplicateVote.
func (s *VoteService) Cast(
	ctx context.Context, subjectKind enum.SubjectKind, subjectID, voterID int64, kind enum.VoteKind,
) (float64, error) {
	var score float64

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ref, err := getReference(ctx, tx, subjectID)
		if err != nil {
			return err
		}

		affected, err := archivePairingVotes(ctx, tx, ref.PairingID, voterID)
		if err != nil {
			return err
		}

		if err := insertVote(ctx, tx, subjectKind, subjectID, voterID, kind); err != nil {
			return err
		}

		score, err = refreshScore(ctx, tx, subjectID)
		if err != nil {
			return err
		}

		// Siblings that lost the voter's previous vote need rescoring too.
		for _, siblingID := range affected {
			if siblingID == subjectID {
				continue
			}
			if _, err := refreshScore(ctx, tx, siblingID); err != nil {
				return err
			}
		}

		return s.stance.resolve(ctx, tx, ref.PairingID)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("Vote cast",
		zap.Int64("subjectID", subjectID),
		zap.Int64("voterID", voterID),
		zap.String("kind", kind.String()),
		zap.Float64("score", score))

	return score, nil
}

// Withdraw archives the voter's active vote on a reference and returns the
// reference's updated score. Withdrawing a vote that does not exist is a
// no-op that returns the current score.
func (s *VoteService) Withdraw(
	ctx context.Context, subjectKind enum.SubjectKind, subjectID, voterID int64,
) (float64, error) {
	var score float64

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ref, err := getReference(ctx, tx, subjectID)
		if err != nil {
			return err
		}

		res, err := tx.NewUpdate().
			Model((*types.Vote)(nil)).
			Set("is_archived = TRUE").
			Where("subject_kind = ?", subjectKind).
			Where("subject_id = ?", subjectID).
			Where("voter_id = ?", voterID).
			Where("is_archived = FALSE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to archive vote: %w", err)
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			score = ref.Score
			return nil
		}

		score, err = refreshScore(ctx, tx, subjectID)
		if err != nil {
			return err
		}

		return s.stance.resolve(ctx, tx, ref.PairingID)
	})
	if err != nil {
		return 0, err
	}

	return score, nil
}

// getReference loads a reference inside the current transaction.
func getReference(ctx context.Context, tx bun.IDB, id int64) (*types.Reference, error) {
	ref := new(types.Reference)

	err := tx.NewSelect().
		Model(ref).
		Where("ref.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to get reference: %w", err)
	}

	return ref, nil
}

// archivePairingVotes archives the voter's active votes on every
// non-archived reference of the pairing, returning the subject IDs whose
// vote totals changed.
func archivePairingVotes(ctx context.Context, tx bun.IDB, pairingID, voterID int64) ([]int64, error) {
	siblingRefs := tx.NewSelect().
		Model((*types.Reference)(nil)).
		Column("ref.id").
		Where("pairing_id = ?", pairingID).
		Where("is_archived = FALSE")

	var affected []int64

	_, err := tx.NewUpdate().
		Model((*types.Vote)(nil)).
		Set("is_archived = TRUE").
		Where("voter_id = ?", voterID).
		Where("subject_kind = ?", enum.SubjectKindReference).
		Where("subject_id IN (?)", siblingRefs).
		Where("is_archived = FALSE").
		Returning("subject_id").
		Exec(ctx, &affected)
	if err != nil {
		return nil, fmt.Errorf("failed to archive pairing votes: %w", err)
	}

	return affected, nil
}

// insertVote inserts a fresh active vote, translating the partial unique
// index violation into ErrDuplicateVote.
func insertVote(
	ctx context.Context, tx bun.IDB, subjectKind enum.SubjectKind, subjectID, voterID int64, kind enum.VoteKind,
) error {
	vote := &types.Vote{
		SubjectKind: subjectKind,
		SubjectID:   subjectID,
		VoterID:     voterID,
		Kind:        kind,
		CreatedAt:   time.Now(),
	}

	if _, err := tx.NewInsert().Model(vote).Exec(ctx); err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
			return types.ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// refreshScore recomputes a reference's Wilson score from its active votes
// and persists it, returning the new value.
func refreshScore(ctx context.Context, tx bun.IDB, subjectID int64) (float64, error) {
	var totals types.VoteTotals

	err := tx.NewSelect().
		Model((*types.Vote)(nil)).
		ColumnExpr("count(*) FILTER (WHERE kind = ?) AS upvotes", enum.VoteKindUp).
		ColumnExpr("count(*) FILTER (WHERE kind = ?) AS downvotes", enum.VoteKindDown).
		Where("subject_kind = ?", enum.SubjectKindReference).
		Where("subject_id = ?", subjectID).
		Where("is_archived = FALSE").
		Scan(ctx, &totals)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	score := utils.WilsonScore(totals.Upvotes, totals.Downvotes)

	_, err = tx.NewUpdate().
		Model((*types.Reference)(nil)).
		Set("score = ?", score).
		Where("id = ?", subjectID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update score: %w", err)
	}

	return score, nil
}
