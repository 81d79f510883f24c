package types

import (
	"time"

	"github.com/uptrace/bun"
)

// Party is a political party whose stances are tracked.
type Party struct {
	bun.BaseModel `bun:"table:parties,alias:party"`

	ID        int64     `bun:",pk,autoincrement"`
	Name      string    `bun:",notnull"`
	Slug      string    `bun:",notnull,unique"`
	CreatedAt time.Time `bun:",notnull"`
}
