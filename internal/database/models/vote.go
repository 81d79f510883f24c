package models

import (
	"context"
	"fmt"

	"github.com/poliscope/stancetrack/internal/database/dbretry"
	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteModel handles database operations for votes.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new vote model.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// GetActiveBySubject retrieves the non-archived votes on a subject.
func (r *VoteModel) GetActiveBySubject(
	ctx context.Context, kind enum.SubjectKind, subjectID int64,
) ([]*types.Vote, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Vote, error) {
		var votes []*types.Vote
		err := r.db.NewSelect().
			Model(&votes).
			Where("subject_kind = ?", kind).
			Where("subject_id = ?", subjectID).
			Apply(notArchived).
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get votes: %w", err)
		}
		return votes, nil
	})
}

// GetActiveByVoter retrieves the voter's current non-archived vote on a
// subject, or nil when they have none.
func (r *VoteModel) GetActiveByVoter(
	ctx context.Context, kind enum.SubjectKind, subjectID, voterID int64,
) (*types.Vote, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Vote, error) {
		var votes []*types.Vote
		err := r.db.NewSelect().
			Model(&votes).
			Where("subject_kind = ?", kind).
			Where("subject_id = ?", subjectID).
			Where("voter_id = ?", voterID).
			Apply(notArchived).
			Limit(1).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get voter's vote: %w", err)
		}
		if len(votes) == 0 {
			return nil, nil
		}
		return votes[0], nil
	})
}

// CountActive aggregates the non-archived up/down votes on a subject.
func (r *VoteModel) CountActive(
	ctx context.Context, kind enum.SubjectKind, subjectID int64,
) (types.VoteTotals, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (types.VoteTotals, error) {
		var totals types.VoteTotals
		err := r.db.NewSelect().
			Model((*types.Vote)(nil)).
			ColumnExpr("count(*) FILTER (WHERE kind = ?) AS upvotes", enum.VoteKindUp).
			ColumnExpr("count(*) FILTER (WHERE kind = ?) AS downvotes", enum.VoteKindDown).
			Where("subject_kind = ?", kind).
			Where("subject_id = ?", subjectID).
			Apply(notArchived).
			Scan(ctx, &totals)
		if err != nil {
			return types.VoteTotals{}, fmt.Errorf("failed to count votes: %w", err)
		}
		return totals, nil
	})
}

// GetHistory retrieves all votes ever cast on a subject, archived included.
func (r *VoteModel) GetHistory(
	ctx context.Context, kind enum.SubjectKind, subjectID int64,
) ([]*types.Vote, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Vote, error) {
		var votes []*types.Vote
		err := r.db.NewSelect().
			Model(&votes).
			Where("subject_kind = ?", kind).
			Where("subject_id = ?", subjectID).
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get vote history: %w", err)
		}
		return votes, nil
	})
}
