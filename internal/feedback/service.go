package feedback

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

const SuccessMessage = "✅ Successfully saved your rating!"

var ErrInvalidRating = errors.New("rating must be one of 1, 2, 3, 4, 5")

// Step names one stage of the submit sequence.
type Step string

const (
	StepEnsureDatabase Step = "ensure_database"
	StepEnsureTable    Step = "ensure_table"
	StepAppend         Step = "append"
	StepReadHistory    Step = "read_history"
)

// StepError reports which step of a submit failed. Steps before it have
// already taken effect and are not undone.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("feedback submit failed at %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Publisher is told about every appended record.
type Publisher interface {
	PublishSubmitted(ctx context.Context, event Event) error
}

type Service struct {
	repo      Repository
	publisher Publisher
	exporter  *Exporter
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithPublisher attaches an optional event publisher.
func (s *Service) WithPublisher(p Publisher) *Service {
	s.publisher = p
	return s
}

// WithExporter attaches an optional history exporter.
func (s *Service) WithExporter(e *Exporter) *Service {
	s.exporter = e
	return s
}

// --------------------------------------------------
// Submit
// --------------------------------------------------

// Submit runs database → table → append → history in order and stops at
// the first failure. Nothing is retried or rolled back; only the append
// is not idempotent, so a retry by the caller adds another row.
func (s *Service) Submit(ctx context.Context, record Record) (*Result, error) {
	record, err := normalize(record)
	if err != nil {
		return nil, err
	}

	if err := s.repo.EnsureDatabase(ctx); err != nil {
		return nil, &StepError{Step: StepEnsureDatabase, Err: err}
	}

	if err := s.repo.EnsureTable(ctx); err != nil {
		return nil, &StepError{Step: StepEnsureTable, Err: err}
	}

	if err := s.repo.Append(ctx, record); err != nil {
		return nil, &StepError{Step: StepAppend, Err: err}
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	log.Printf(
		"[FEEDBACK] saved submission=%s location=%s rating=%s",
		id, record.LocationID, record.UserRating,
	)

	s.publish(ctx, Event{SubmissionID: id, Record: record, SubmittedAt: now})

	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, &StepError{Step: StepReadHistory, Err: err}
	}

	return &Result{
		SubmissionID: id,
		Record:       record,
		Message:      SuccessMessage,
		History:      history,
		SubmittedAt:  now,
	}, nil
}

// History reads every feedback row submitted so far.
func (s *Service) History(ctx context.Context) ([]Record, error) {
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []Record{}
	}
	return history, nil
}

// ExportHistory uploads the current history as CSV and returns its URL.
func (s *Service) ExportHistory(ctx context.Context) (string, error) {
	if s.exporter == nil {
		return "", ErrExportDisabled
	}

	history, err := s.History(ctx)
	if err != nil {
		return "", err
	}

	return s.exporter.Export(ctx, history)
}

func (s *Service) ExportEnabled() bool {
	return s.exporter != nil
}

// the record is already stored; a lost event is only logged
func (s *Service) publish(ctx context.Context, event Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSubmitted(ctx, event); err != nil {
		log.Printf("⚠️  [FEEDBACK] publish submission=%s: %v", event.SubmissionID, err)
	}
}

func normalize(r Record) (Record, error) {
	r.UserRating = strings.TrimSpace(r.UserRating)
	if r.UserRating == "" {
		r.UserRating = DefaultRating
	}
	if !ValidRating(r.UserRating) {
		return r, ErrInvalidRating
	}
	return r, nil
}
