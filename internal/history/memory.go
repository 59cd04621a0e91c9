package history

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-memory store.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Add records an entry.
func (m *Memory) Add(ctx context.Context, e Entry) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = int64(len(m.entries) + 1)
	if e.At.IsZero() {
		e.At = time.Now()
	}
	m.entries = append(m.entries, e)
	return e.ID, nil
}

// Recent returns the latest entries, newest first.
func (m *Memory) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	r := make([]Entry, 0, n)
	for i := len(m.entries) - 1; len(r) < n; i-- {
		r = append(r, m.entries[i])
	}
	return r, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
