package location

import (
	"context"
	"errors"

	"whateating/internal/selection"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found among candidates")
	ErrInvalidField       = errors.New("invalid flag field")
)

// Repository is the read side of the locations table.
type Repository interface {
	// raw views
	ListAll(ctx context.Context) ([]Location, error)
	ListOpen(ctx context.Context) ([]Location, error)

	// metrics
	CountOpen(ctx context.Context) (int, error)
	CountOpenZipCodes(ctx context.Context) (int, error)
	CountOpenWithDelivery(ctx context.Context) (int, error)
	CountOpenWithReservation(ctx context.Context) (int, error)

	// candidate workflow
	DistinctOpenNamesWhere(ctx context.Context, field selection.Field) ([]string, error)
	FindOpenByName(ctx context.Context, field selection.Field, name string) (*Location, error)
}
