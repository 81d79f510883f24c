package models

import "github.com/uptrace/bun"

// notArchived restricts a query to rows whose archive flag is unset.
//
// Archival is the system's soft-delete: every read goes through this
// helper unless it explicitly asks for history, so the filter cannot be
// forgotten on one query and silently include withdrawn rows.
func notArchived(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Where("is_archived = FALSE")
}
