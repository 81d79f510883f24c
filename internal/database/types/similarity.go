package types

import (
	"time"

	"github.com/uptrace/bun"
)

// PartySimilarity is a timestamped snapshot of how alike two parties'
// known stances are, stored as a 0-100 value.
//
// Snapshots are append-only: recomputation archives the previous records
// for the first party and inserts fresh ones, so the newest non-archived
// record per ordered pair is authoritative and history is preserved.
type PartySimilarity struct {
	bun.BaseModel `bun:"table:party_similarities,alias:ps"`

	ID            int64     `bun:",pk,autoincrement"`
	FirstPartyID  int64     `bun:",notnull"`
	SecondPartyID int64     `bun:",notnull"`
	Similarity    float64   `bun:",notnull"`
	IsArchived    bool      `bun:",notnull,default:false"`
	CreatedAt     time.Time `bun:",notnull"`

	FirstParty  *Party `bun:"rel:belongs-to,join:first_party_id=id"`
	SecondParty *Party `bun:"rel:belongs-to,join:second_party_id=id"`
}
