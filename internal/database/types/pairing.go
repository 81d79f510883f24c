package types

import (
	"time"

	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/uptrace/bun"
)

// Pairing is a party's position on a single issue.
//
// The stance is derived from the references submitted as evidence and the
// votes cast on them; it is cached here so reads never recompute it. The
// notability score flags pairings whose stance is rare or contrarian
// relative to other parties on the same issue.
type Pairing struct {
	bun.BaseModel `bun:"table:pairings,alias:pairing"`

	ID         int64       `bun:",pk,autoincrement"`
	IssueID    int64       `bun:",notnull"`
	PartyID    int64       `bun:",notnull"`
	Stance     enum.Stance `bun:",notnull,default:0"`
	Notability float64     `bun:",notnull,default:0"`
	UpdatedAt  time.Time   `bun:",notnull"`

	Issue *Issue `bun:"rel:belongs-to,join:issue_id=id"`
	Party *Party `bun:"rel:belongs-to,join:party_id=id"`
}
