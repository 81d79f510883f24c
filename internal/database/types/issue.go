package types

import (
	"time"

	"github.com/uptrace/bun"
)

// Issue is a public issue that parties may take a stance on.
//
// UpdatedAt is touched whenever any party's stance on the issue changes, so
// recently contested issues surface first in activity listings.
type Issue struct {
	bun.BaseModel `bun:"table:issues,alias:issue"`

	ID          int64     `bun:",pk,autoincrement"`
	Name        string    `bun:",notnull"`
	Slug        string    `bun:",notnull,unique"`
	Description string    `bun:",type:text"`
	IsPopular   bool      `bun:",notnull,default:false"`
	CreatedAt   time.Time `bun:",notnull"`
	UpdatedAt   time.Time `bun:",notnull"`
}
