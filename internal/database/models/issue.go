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

// IssueModel handles database operations for issues.
type IssueModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewIssue creates a new issue model.
func NewIssue(db *bun.DB, logger *zap.Logger) *IssueModel {
	return &IssueModel{
		db:     db,
		logger: logger.Named("db_issue"),
	}
}

// Create inserts an issue, deriving its slug from the name.
func (r *IssueModel) Create(ctx context.Context, name, description string) (*types.Issue, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Issue, error) {
		now := time.Now()
		issue := &types.Issue{
			Name:        name,
			Slug:        utils.Slugify(name),
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		_, err := r.db.NewInsert().
			Model(issue).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create issue: %w", err)
		}

		r.logger.Debug("Created issue",
			zap.Int64("issueID", issue.ID),
			zap.String("slug", issue.Slug))

		return issue, nil
	})
}

// GetByID retrieves an issue by its ID.
func (r *IssueModel) GetByID(ctx context.Context, id int64) (*types.Issue, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Issue, error) {
		issue := new(types.Issue)
		err := r.db.NewSelect().
			Model(issue).
			Where("issue.id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrIssueNotFound
			}
			return nil, fmt.Errorf("failed to get issue: %w", err)
		}
		return issue, nil
	})
}

// GetBySlug retrieves an issue by its slug.
func (r *IssueModel) GetBySlug(ctx context.Context, slug string) (*types.Issue, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Issue, error) {
		issue := new(types.Issue)
		err := r.db.NewSelect().
			Model(issue).
			Where("slug = ?", slug).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrIssueNotFound
			}
			return nil, fmt.Errorf("failed to get issue by slug: %w", err)
		}
		return issue, nil
	})
}

// GetPopular retrieves issues flagged as popular, most recently active first.
func (r *IssueModel) GetPopular(ctx context.Context) ([]*types.Issue, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Issue, error) {
		var issues []*types.Issue
		err := r.db.NewSelect().
			Model(&issues).
			Where("is_popular = TRUE").
			Order("updated_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get popular issues: %w", err)
		}
		return issues, nil
	})
}

// Exists reports whether an issue with the given ID exists.
func (r *IssueModel) Exists(ctx context.Context, id int64) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		exists, err := r.db.NewSelect().
			Model((*types.Issue)(nil)).
			Where("id = ?", id).
			Exists(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check issue existence: %w", err)
		}
		return exists, nil
	})
}

// Touch bumps an issue's updated_at so popularity listings reflect recent
// stance activity.
func (r *IssueModel) Touch(ctx context.Context, id int64) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewUpdate().
			Model((*types.Issue)(nil)).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to touch issue: %w", err)
		}
		return nil
	})
}
