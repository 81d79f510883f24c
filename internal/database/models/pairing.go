package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/poliscope/stancetrack/internal/database/dbretry"
	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// PairingModel handles database operations for issue/party pairings.
type PairingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPairing creates a new pairing model.
func NewPairing(db *bun.DB, logger *zap.Logger) *PairingModel {
	return &PairingModel{
		db:     db,
		logger: logger.Named("db_pairing"),
	}
}

// GetByID retrieves a pairing by its ID.
func (r *PairingModel) GetByID(ctx context.Context, id int64) (*types.Pairing, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Pairing, error) {
		pairing := new(types.Pairing)
		err := r.db.NewSelect().
			Model(pairing).
			Where("pairing.id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrPairingNotFound
			}
			return nil, fmt.Errorf("failed to get pairing: %w", err)
		}
		return pairing, nil
	})
}

// GetOrInit retrieves the pairing for an issue/party pair, or returns a
// fresh unsaved pairing with default fields when none exists yet.
//
// Pairings materialise lazily: most issue/party combinations never receive
// evidence, so nothing is persisted until a caller forces a save (for
// example before attaching a reference). An unsaved pairing has ID 0.
func (r *PairingModel) GetOrInit(ctx context.Context, issueID, partyID int64) (*types.Pairing, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Pairing, error) {
		pairing := new(types.Pairing)
		err := r.db.NewSelect().
			Model(pairing).
			Where("issue_id = ?", issueID).
			Where("party_id = ?", partyID).
			Scan(ctx)
		if err == nil {
			return pairing, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get pairing: %w", err)
		}

		return &types.Pairing{
			IssueID:   issueID,
			PartyID:   partyID,
			Stance:    enum.StanceUnknown,
			UpdatedAt: time.Now(),
		}, nil
	})
}

// Save persists a pairing, assigning its ID on first save. Concurrent
// saves of the same issue/party pair converge on one row.
func (r *PairingModel) Save(ctx context.Context, pairing *types.Pairing) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if pairing.ID != 0 {
			_, err := r.db.NewUpdate().
				Model(pairing).
				WherePK().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update pairing: %w", err)
			}
			return nil
		}

		_, err := r.db.NewInsert().
			Model(pairing).
			On("CONFLICT (issue_id, party_id) DO UPDATE").
			Set("updated_at = EXCLUDED.updated_at").
			Returning("id").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert pairing: %w", err)
		}
		return nil
	})
}

// GetByIssue retrieves all pairings on an issue with their parties loaded.
func (r *PairingModel) GetByIssue(ctx context.Context, issueID int64) ([]*types.Pairing, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Pairing, error) {
		var pairings []*types.Pairing
		err := r.db.NewSelect().
			Model(&pairings).
			Relation("Party").
			Where("issue_id = ?", issueID).
			Order("pairing.updated_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get pairings by issue: %w", err)
		}
		return pairings, nil
	})
}

// GetByParty retrieves all pairings for a party with their issues loaded.
func (r *PairingModel) GetByParty(ctx context.Context, partyID int64) ([]*types.Pairing, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Pairing, error) {
		var pairings []*types.Pairing
		err := r.db.NewSelect().
			Model(&pairings).
			Relation("Issue").
			Where("party_id = ?", partyID).
			Order("pairing.updated_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get pairings by party: %w", err)
		}
		return pairings, nil
	})
}

// GetMostNotable retrieves known-stance pairings ordered by notability.
func (r *PairingModel) GetMostNotable(ctx context.Context, limit int) ([]*types.Pairing, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Pairing, error) {
		var pairings []*types.Pairing
		err := r.db.NewSelect().
			Model(&pairings).
			Relation("Issue").
			Relation("Party").
			Where("stance != ?", enum.StanceUnknown).
			Order("notability DESC", "pairing.updated_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get notable pairings: %w", err)
		}
		return pairings, nil
	})
}

// StanceSet builds a party's known stances as an issue-to-stance map.
func (r *PairingModel) StanceSet(ctx context.Context, partyID int64) (types.StanceSet, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (types.StanceSet, error) {
		var rows []struct {
			IssueID int64       `bun:"issue_id"`
			Stance  enum.Stance `bun:"stance"`
		}

		err := r.db.NewSelect().
			Model((*types.Pairing)(nil)).
			Column("issue_id", "stance").
			Where("party_id = ?", partyID).
			Where("stance != ?", enum.StanceUnknown).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to get stance set: %w", err)
		}

		set := make(types.StanceSet, len(rows))
		for _, row := range rows {
			set[row.IssueID] = row.Stance
		}
		return set, nil
	})
}

// StanceCounts tallies the known stances held on an issue.
func (r *PairingModel) StanceCounts(ctx context.Context, issueID int64) (map[enum.Stance]int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[enum.Stance]int, error) {
		var rows []struct {
			Stance enum.Stance `bun:"stance"`
			Count  int         `bun:"count"`
		}

		err := r.db.NewSelect().
			Model((*types.Pairing)(nil)).
			ColumnExpr("stance, count(*) AS count").
			Where("issue_id = ?", issueID).
			Where("stance != ?", enum.StanceUnknown).
			GroupExpr("stance").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to count stances: %w", err)
		}

		counts := make(map[enum.Stance]int, len(rows))
		for _, row := range rows {
			counts[row.Stance] = row.Count
		}
		return counts, nil
	})
}

// UpdateNotability persists a pairing's notability without touching its
// updated_at timestamp, so metric churn does not resurrect the pairing in
// recent-activity listings.
func (r *PairingModel) UpdateNotability(ctx context.Context, id int64, notability float64) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewUpdate().
			Model((*types.Pairing)(nil)).
			Set("notability = ?", notability).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update notability: %w", err)
		}
		return nil
	})
}
