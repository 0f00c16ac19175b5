package location

import (
	"context"
	"errors"

	"whateating/internal/selection"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Source tables
// --------------------------------------------------
func (s *Service) Source(ctx context.Context) ([]Location, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Open(ctx context.Context) ([]Location, error) {
	return s.repo.ListOpen(ctx)
}

// --------------------------------------------------
// Candidate set for a chosen field
// --------------------------------------------------
func (s *Service) Candidates(
	ctx context.Context,
	field selection.Field,
) ([]string, error) {

	if field == "" {
		return nil, selection.ErrNoFieldChosen
	}

	names, err := s.repo.DistinctOpenNamesWhere(ctx, field)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// --------------------------------------------------
// Detail of the chosen restaurant
// --------------------------------------------------

// Detail looks the name up within the candidate set of field; the first
// matching location wins when several share a name.
func (s *Service) Detail(
	ctx context.Context,
	field selection.Field,
	name string,
) (*Detail, error) {

	if field == "" {
		return nil, selection.ErrNoFieldChosen
	}
	if name == "" {
		return nil, selection.ErrNoRestaurantChosen
	}

	l, err := s.repo.FindOpenByName(ctx, field, name)
	if err != nil {
		return nil, err
	}

	return &Detail{
		ID:      l.ID,
		Name:    l.Name,
		Address: l.FullAddress,
	}, nil
}

// IsCandidate reports whether name is currently selectable for field.
func (s *Service) IsCandidate(
	ctx context.Context,
	field selection.Field,
	name string,
) (bool, error) {
	_, err := s.repo.FindOpenByName(ctx, field, name)
	if errors.Is(err, ErrRestaurantNotFound) {
		return false, nil
	}
	return err == nil, err
}
