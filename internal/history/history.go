// Package history records calculator evaluations.
package history

import (
	"context"
	"time"
)

// Entry is one evaluation. Exactly one of Result and Err is normally set.
type Entry struct {
	ID     int64
	Expr   string
	Result string
	Err    string
	// Steps is the number of trace lines the evaluation produced.
	Steps int
	At    time.Time
}

// Store is the interface for evaluation logs.
type Store interface {
	// Add records e and returns its ID. The ID and At fields of e are
	// assigned by the store when they are zero.
	Add(ctx context.Context, e Entry) (int64, error)
	// Recent returns up to limit entries, newest first. A limit of zero or
	// less returns every entry.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
