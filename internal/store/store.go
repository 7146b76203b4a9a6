// Package store contains the entity repositories. Every query is
// parameterized and scoped by the tenant identifier (orgmail), which is
// passed explicitly to each method rather than read from ambient state.
package store

import (
	"database/sql"
	"strings"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the child-table
// helpers can run inside or outside a transaction.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

// placeholders builds "?, ?, ?" for IN clauses with n members.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// diffIDs returns the ids present in existing but absent from incoming.
// This is the deletion set for child-collection reconciliation.
func diffIDs(existing, incoming []int64) []int64 {
	keep := make(map[int64]struct{}, len(incoming))
	for _, id := range incoming {
		keep[id] = struct{}{}
	}
	var toDelete []int64
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			toDelete = append(toDelete, id)
		}
	}
	return toDelete
}

// idArgs converts an id slice into query arguments.
func idArgs(ids []int64, extra ...any) []any {
	args := make([]any, 0, len(ids)+len(extra))
	for _, id := range ids {
		args = append(args, id)
	}
	return append(args, extra...)
}
