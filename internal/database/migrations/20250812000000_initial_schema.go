package migrations

import (
	"context"
	"fmt"

	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Party)(nil),
			(*types.Issue)(nil),
			(*types.Pairing)(nil),
			(*types.Reference)(nil),
			(*types.Vote)(nil),
			(*types.PartySimilarity)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		// Foreign keys: deleting an issue or party cascades through its
		// pairings and their references. Votes carry no FK because the
		// subject column is polymorphic.
		_, err := db.NewRaw(`
			ALTER TABLE pairings
			ADD CONSTRAINT fk_pairings_issue
			FOREIGN KEY (issue_id) REFERENCES issues (id) ON DELETE CASCADE;

			ALTER TABLE pairings
			ADD CONSTRAINT fk_pairings_party
			FOREIGN KEY (party_id) REFERENCES parties (id) ON DELETE CASCADE;

			ALTER TABLE "references"
			ADD CONSTRAINT fk_references_pairing
			FOREIGN KEY (pairing_id) REFERENCES pairings (id) ON DELETE CASCADE;

			ALTER TABLE party_similarities
			ADD CONSTRAINT fk_party_similarities_first_party
			FOREIGN KEY (first_party_id) REFERENCES parties (id) ON DELETE CASCADE;

			ALTER TABLE party_similarities
			ADD CONSTRAINT fk_party_similarities_second_party
			FOREIGN KEY (second_party_id) REFERENCES parties (id) ON DELETE CASCADE;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add foreign keys: %w", err)
		}

		// Partial unique indexes enforce the active-record invariants:
		// one pairing per (issue, party), one active vote per (subject,
		// voter), one active reference per (pairing, url, stance).
		_, err = db.NewRaw(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_pairings_issue_party
			ON pairings (issue_id, party_id);

			CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_active_subject_voter
			ON votes (subject_kind, subject_id, voter_id)
			WHERE NOT is_archived;

			CREATE UNIQUE INDEX IF NOT EXISTS idx_references_active_pairing_url_stance
			ON "references" (pairing_id, url, stance)
			WHERE NOT is_archived;

			-- Read-path indexes
			CREATE INDEX IF NOT EXISTS idx_votes_active_subject
			ON votes (subject_kind, subject_id)
			WHERE NOT is_archived;

			CREATE INDEX IF NOT EXISTS idx_references_active_pairing
			ON "references" (pairing_id, score DESC)
			WHERE NOT is_archived;

			CREATE INDEX IF NOT EXISTS idx_pairings_party
			ON pairings (party_id);

			CREATE INDEX IF NOT EXISTS idx_party_similarities_active_first
			ON party_similarities (first_party_id, similarity DESC)
			WHERE NOT is_archived;

			CREATE INDEX IF NOT EXISTS idx_issues_popular
			ON issues (updated_at DESC)
			WHERE is_popular;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP TABLE IF EXISTS
				party_similarities,
				votes,
				"references",
				pairings,
				issues,
				parties
			CASCADE
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}

		return nil
	})
}
