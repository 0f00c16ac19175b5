package session

import (
	"context"
	"errors"

	"whateating/internal/selection"
)

var ErrNotFound = errors.New("session not found")

// Store keeps one selection.State per session ID.
type Store interface {
	Get(ctx context.Context, id string) (*selection.State, error)
	Save(ctx context.Context, id string, state *selection.State) error
	Delete(ctx context.Context, id string) error
}
