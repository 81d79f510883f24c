package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/poliscope/stancetrack/internal/database/dbretry"
	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReferenceModel handles database operations for references.
type ReferenceModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReference creates a new reference model.
func NewReference(db *bun.DB, logger *zap.Logger) *ReferenceModel {
	return &ReferenceModel{
		db:     db,
		logger: logger.Named("db_reference"),
	}
}

// GetByID retrieves a reference by its ID.
func (r *ReferenceModel) GetByID(ctx context.Context, id int64) (*types.Reference, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Reference, error) {
		reference := new(types.Reference)
		err := r.db.NewSelect().
			Model(reference).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrReferenceNotFound
			}
			return nil, fmt.Errorf("failed to get reference: %w", err)
		}
		return reference, nil
	})
}

// GetActiveByPairing retrieves the non-archived references on a pairing,
// best-scored first.
func (r *ReferenceModel) GetActiveByPairing(ctx context.Context, pairingID int64) ([]*types.Reference, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Reference, error) {
		var references []*types.Reference
		err := r.db.NewSelect().
			Model(&references).
			Where("pairing_id = ?", pairingID).
			Apply(notArchived).
			Order("score DESC", "created_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get references: %w", err)
		}
		return references, nil
	})
}

// GetByPairing retrieves all references on a pairing, archived included.
func (r *ReferenceModel) GetByPairing(ctx context.Context, pairingID int64) ([]*types.Reference, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Reference, error) {
		var references []*types.Reference
		err := r.db.NewSelect().
			Model(&references).
			Where("pairing_id = ?", pairingID).
			Order("score DESC", "created_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get references: %w", err)
		}
		return references, nil
	})
}

// SetArchived flips a reference's archive flag.
func (r *ReferenceModel) SetArchived(ctx context.Context, id int64, archived bool) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		res, err := r.db.NewUpdate().
			Model((*types.Reference)(nil)).
			Set("is_archived = ?", archived).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to archive reference: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return types.ErrReferenceNotFound
		}
		return nil
	})
}
