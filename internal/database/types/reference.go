package types

import (
	"time"

	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/uptrace/bun"
)

// Reference is a piece of evidence backing a stance on a pairing, typically
// a link to a policy page, speech transcript or news article.
//
// Score caches the Wilson lower bound computed from the reference's active
// votes. References are archived rather than deleted so vote history stays
// intact; among non-archived references, (pairing, url, stance) is unique.
type Reference struct {
	bun.BaseModel `bun:"table:references,alias:ref"`

	ID          int64       `bun:",pk,autoincrement"`
	PairingID   int64       `bun:",notnull"`
	AuthorID    int64       `bun:",notnull"`
	Stance      enum.Stance `bun:",notnull"`
	URL         string      `bun:",notnull"`
	Title       string      `bun:",notnull"`
	Excerpt     string      `bun:",type:text"`
	Score       float64     `bun:",notnull,default:0"`
	PublishedOn *time.Time  `bun:",nullzero"`
	IsArchived  bool        `bun:",notnull,default:false"`
	CreatedAt   time.Time   `bun:",notnull"`

	Pairing *Pairing `bun:"rel:belongs-to,join:pairing_id=id"`
}

// EffectivePublishedOn returns the publication date when the submitter
// provided one, falling back to the submission time.
func (r *Reference) EffectivePublishedOn() time.Time {
	if r.PublishedOn != nil {
		return *r.PublishedOn
	}
	return r.CreatedAt
}
