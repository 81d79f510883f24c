package types

import (
	"time"

	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/uptrace/bun"
)

// Vote is one user's up/down judgment on a votable subject.
//
// Votes are archived rather than deleted when withdrawn or replaced, which
// preserves the audit trail. A partial unique index guarantees at most one
// non-archived vote per (subject, voter); violating it is surfaced as
// ErrDuplicateVote rather than silently merged.
type Vote struct {
	bun.BaseModel `bun:"table:votes,alias:vote"`

	ID          int64            `bun:",pk,autoincrement"`
	SubjectKind enum.SubjectKind `bun:",notnull"`
	SubjectID   int64            `bun:",notnull"`
	VoterID     int64            `bun:",notnull"`
	Kind        enum.VoteKind    `bun:",notnull"`
	IsArchived  bool             `bun:",notnull,default:false"`
	CreatedAt   time.Time        `bun:",notnull"`
}

// VoteTotals aggregates the active votes on a subject.
type VoteTotals struct {
	Upvotes   int `bun:"upvotes"`
	Downvotes int `bun:"downvotes"`
}
