package feedback

import (
	"context"
	"errors"
	"sync"
)

var errTableMissing = errors.New("feedback table does not exist")

type InMemoryRepository struct {
	mu       sync.Mutex
	database bool
	table    bool
	rows     []Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) EnsureDatabase(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.database = true
	return nil
}

func (r *InMemoryRepository) EnsureTable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.database {
		return errors.New("feedback database does not exist")
	}
	r.table = true
	return nil
}

func (r *InMemoryRepository) Append(ctx context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.table {
		return errTableMissing
	}
	r.rows = append(r.rows, record)
	return nil
}

func (r *InMemoryRepository) History(ctx context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.table {
		return []Record{}, nil
	}
	out := make([]Record, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
