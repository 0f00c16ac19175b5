package location

import (
	"context"
	"fmt"
	"sort"

	"whateating/internal/selection"
)

type InMemoryRepository struct {
	locations []Location
}

func NewInMemoryRepository(locations ...Location) *InMemoryRepository {
	return &InMemoryRepository{locations: locations}
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Location, error) {
	out := make([]Location, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *InMemoryRepository) ListOpen(ctx context.Context) ([]Location, error) {
	var out []Location
	for _, l := range r.locations {
		if l.IsOpen() {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) CountOpen(ctx context.Context) (int, error) {
	open, _ := r.ListOpen(ctx)
	return len(open), nil
}

func (r *InMemoryRepository) CountOpenZipCodes(ctx context.Context) (int, error) {
	open, _ := r.ListOpen(ctx)
	zips := make(map[string]struct{})
	for _, l := range open {
		zips[l.ZipPostal] = struct{}{}
	}
	return len(zips), nil
}

func (r *InMemoryRepository) CountOpenWithDelivery(ctx context.Context) (int, error) {
	open, _ := r.ListOpen(ctx)
	n := 0
	for _, l := range open {
		if l.DeliveryTotal() > 0 {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) CountOpenWithReservation(ctx context.Context) (int, error) {
	open, _ := r.ListOpen(ctx)
	n := 0
	for _, l := range open {
		if l.ReservationTotal() > 0 {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) DistinctOpenNamesWhere(
	ctx context.Context,
	field selection.Field,
) ([]string, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, l := range r.locations {
		if !l.IsOpen() || l.Flag(field) != 1 {
			continue
		}
		if _, dup := seen[l.Name]; dup {
			continue
		}
		seen[l.Name] = struct{}{}
		names = append(names, l.Name)
	}

	sort.Strings(names)
	return names, nil
}

func (r *InMemoryRepository) FindOpenByName(
	ctx context.Context,
	field selection.Field,
	name string,
) (*Location, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	var found *Location
	for i := range r.locations {
		l := r.locations[i]
		if !l.IsOpen() || l.Flag(field) != 1 || l.Name != name {
			continue
		}
		if found == nil || l.ID < found.ID {
			found = &l
		}
	}

	if found == nil {
		return nil, ErrRestaurantNotFound
	}
	return found, nil
}
