package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/poliscope/stancetrack/internal/database/dbretry"
	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/pkg/utils"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// PartyModel handles database operations for political parties.
type PartyModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewParty creates a new party model.
func NewParty(db *bun.DB, logger *zap.Logger) *PartyModel {
	return &PartyModel{
		db:     db,
		logger: logger.Named("db_party"),
	}
}

// Create inserts a party, deriving its slug from the name.
func (r *PartyModel) Create(ctx context.Context, name string) (*types.Party, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Party, error) {
		party := &types.Party{
			Name:      name,
			Slug:      utils.Slugify(name),
			CreatedAt: time.Now(),
		}

		_, err := r.db.NewInsert().
			Model(party).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create party: %w", err)
		}

		r.logger.Debug("Created party",
			zap.Int64("partyID", party.ID),
			zap.String("slug", party.Slug))

		return party, nil
	})
}

// GetByID retrieves a party by its ID.
func (r *PartyModel) GetByID(ctx context.Context, id int64) (*types.Party, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Party, error) {
		party := new(types.Party)
		err := r.db.NewSelect().
			Model(party).
			Where("party.id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrPartyNotFound
			}
			return nil, fmt.Errorf("failed to get party: %w", err)
		}
		return party, nil
	})
}

// GetBySlug retrieves a party by its slug.
func (r *PartyModel) GetBySlug(ctx context.Context, slug string) (*types.Party, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Party, error) {
		party := new(types.Party)
		err := r.db.NewSelect().
			Model(party).
			Where("slug = ?", slug).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrPartyNotFound
			}
			return nil, fmt.Errorf("failed to get party by slug: %w", err)
		}
		return party, nil
	})
}

// GetAll retrieves every party ordered by name.
func (r *PartyModel) GetAll(ctx context.Context) ([]*types.Party, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Party, error) {
		var parties []*types.Party
		err := r.db.NewSelect().
			Model(&parties).
			Order("name ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get parties: %w", err)
		}
		return parties, nil
	})
}

// GetOthers retrieves every party except the given one.
func (r *PartyModel) GetOthers(ctx context.Context, partyID int64) ([]*types.Party, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Party, error) {
		var parties []*types.Party
		err := r.db.NewSelect().
			Model(&parties).
			Where("party.id != ?", partyID).
			Order("name ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get other parties: %w", err)
		}
		return parties, nil
	})
}
