package feedback

import "context"

// Repository is the append-only feedback table.
type Repository interface {
	// create-if-absent, safe to call on every submit
	EnsureDatabase(ctx context.Context) error
	EnsureTable(ctx context.Context) error

	// Append adds exactly one row; it never replaces existing rows.
	Append(ctx context.Context, record Record) error

	// History returns every row in insertion order.
	History(ctx context.Context) ([]Record, error)
}
