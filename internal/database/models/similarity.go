package models

import (
	"context"
	"fmt"

	"github.com/poliscope/stancetrack/internal/database/dbretry"
	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SimilarityModel handles database operations for party similarity snapshots.
type SimilarityModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSimilarity creates a new similarity model.
func NewSimilarity(db *bun.DB, logger *zap.Logger) *SimilarityModel {
	return &SimilarityModel{
		db:     db,
		logger: logger.Named("db_similarity"),
	}
}

// GetLatestForParty retrieves the current similarity snapshot against every
// other party, highest similarity first.
func (r *SimilarityModel) GetLatestForParty(ctx context.Context, partyID int64) ([]*types.PartySimilarity, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.PartySimilarity, error) {
		var records []*types.PartySimilarity
		err := r.db.NewSelect().
			Model(&records).
			Relation("SecondParty").
			Where("first_party_id = ?", partyID).
			Apply(notArchived).
			Order("similarity DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get similarities: %w", err)
		}
		return records, nil
	})
}

// GetForPair retrieves the current snapshot for an ordered party pair, or
// (nil, nil) when the pair has no defined similarity.
func (r *SimilarityModel) GetForPair(ctx context.Context, firstPartyID, secondPartyID int64) (*types.PartySimilarity, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.PartySimilarity, error) {
		var records []*types.PartySimilarity
		err := r.db.NewSelect().
			Model(&records).
			Where("first_party_id = ?", firstPartyID).
			Where("second_party_id = ?", secondPartyID).
			Apply(notArchived).
			Order("created_at DESC").
			Limit(1).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get similarity for pair: %w", err)
		}
		if len(records) == 0 {
			return nil, nil
		}
		return records[0], nil
	})
}

// GetHistory retrieves all snapshots for an ordered party pair, newest
// first, including archived ones.
func (r *SimilarityModel) GetHistory(ctx context.Context, firstPartyID, secondPartyID int64) ([]*types.PartySimilarity, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.PartySimilarity, error) {
		var records []*types.PartySimilarity
		err := r.db.NewSelect().
			Model(&records).
			Where("first_party_id = ?", firstPartyID).
			Where("second_party_id = ?", secondPartyID).
			Order("created_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get similarity history: %w", err)
		}
		return records, nil
	})
}
