package insights

import (
	"context"
	"log"
)

// Counter is the slice of the locations repository the metrics need.
type Counter interface {
	CountOpen(ctx context.Context) (int, error)
	CountOpenZipCodes(ctx context.Context) (int, error)
	CountOpenWithDelivery(ctx context.Context) (int, error)
	CountOpenWithReservation(ctx context.Context) (int, error)
}

type Service struct {
	counter Counter
}

func NewService(counter Counter) *Service {
	return &Service{counter: counter}
}

// Summary counts open locations and the distinct zip codes among them.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	open, err := s.counter.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	zips, err := s.counter.CountOpenZipCodes(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("[INSIGHTS] open=%d zip_codes=%d", open, zips)

	return &Summary{OpenCount: open, ZipCount: zips}, nil
}

// DeliveryVsDineIn counts open locations with at least one delivery
// provider, and separately those with at least one reservation provider.
func (s *Service) DeliveryVsDineIn(ctx context.Context) (*Aggregate, error) {
	delivery, err := s.counter.CountOpenWithDelivery(ctx)
	if err != nil {
		return nil, err
	}

	dinein, err := s.counter.CountOpenWithReservation(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("[INSIGHTS] delivery=%d dine_in=%d", delivery, dinein)

	return &Aggregate{
		Rows: []AggregateRow{
			{Type: TypeDelivery, Count: delivery},
			{Type: TypeDineIn, Count: dinein},
		},
	}, nil
}
