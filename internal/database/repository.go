package database

import (
	"github.com/poliscope/stancetrack/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	party      *models.PartyModel
	issue      *models.IssueModel
	pairing    *models.PairingModel
	reference  *models.ReferenceModel
	vote       *models.VoteModel
	similarity *models.SimilarityModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		party:      models.NewParty(db, logger),
		issue:      models.NewIssue(db, logger),
		pairing:    models.NewPairing(db, logger),
		reference:  models.NewReference(db, logger),
		vote:       models.NewVote(db, logger),
		similarity: models.NewSimilarity(db, logger),
	}
}

// Party returns the party model repository.
func (r *Repository) Party() *models.PartyModel {
	return r.party
}

// Issue returns the issue model repository.
func (r *Repository) Issue() *models.IssueModel {
	return r.issue
}

// Pairing returns the pairing model repository.
func (r *Repository) Pairing() *models.PairingModel {
	return r.pairing
}

// Reference returns the reference model repository.
func (r *Repository) Reference() *models.ReferenceModel {
	return r.reference
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Similarity returns the similarity model repository.
func (r *Repository) Similarity() *models.SimilarityModel {
	return r.similarity
}
