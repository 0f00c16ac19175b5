package selection

import (
	"errors"
	"log"
	"time"
)

var (
	ErrNoFieldChosen      = errors.New("no delivery or dine-in option has been chosen")
	ErrNoRestaurantChosen = errors.New("no restaurant has been chosen")
	ErrEmptyRestaurant    = errors.New("restaurant name is required")
)

// Stage is where a session sits in the choose-then-rate funnel.
type Stage string

const (
	NoSelection       Stage = "NO_SELECTION"
	FieldChosen       Stage = "FIELD_CHOSEN"
	RestaurantChosen  Stage = "RESTAURANT_CHOSEN"
	FeedbackSubmitted Stage = "FEEDBACK_SUBMITTED"
)

// State is everything one browsing session remembers between requests.
//
// NewState is the only constructor; its defaults are:
//   - Selection: None (no chosen field)
//   - DeliveryOption / DineInOption: the first option of each radio group
//   - ChosenRestaurant: ""
//   - LastSubmission: nil
type State struct {
	Selection Selection `json:"selection"`

	// radio positions, kept so the page redraws them where the user left them
	DeliveryOption string `json:"delivery_option"`
	DineInOption   string `json:"dine_in_option"`

	ChosenRestaurant string      `json:"chosen_restaurant"`
	LastSubmission   *Submission `json:"last_submission,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Submission marks the most recent successful feedback write.
type Submission struct {
	ID          string    `json:"id"`
	Restaurant  string    `json:"restaurant"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewState() *State {
	now := time.Now().UTC()
	return &State{
		Selection:      None,
		DeliveryOption: DefaultOption(Delivery),
		DineInOption:   DefaultOption(DineIn),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ChosenField is the flag column of the confirmed selection, "" if none.
func (s *State) ChosenField() Field {
	return s.Selection.Field()
}

// RadioOption is the remembered radio position for a category.
func (s *State) RadioOption(c Category) string {
	if c == DineIn {
		return s.DineInOption
	}
	return s.DeliveryOption
}

// Stage is derived from the stored fields so it can never disagree with them.
func (s *State) Stage() Stage {
	switch {
	case s.Selection.IsNone():
		return NoSelection
	case s.ChosenRestaurant == "":
		return FieldChosen
	case s.LastSubmission != nil:
		return FeedbackSubmitted
	default:
		return RestaurantChosen
	}
}

// ConfirmOption overwrites the selection with the pressed column's option.
// Both confirm buttons write the same value, so confirming dine-in after
// delivery discards the delivery choice. ChosenRestaurant is left alone
// even when the field changes.
func (s *State) ConfirmOption(c Category, option string) (Field, error) {
	sel, err := NewSelection(c, option)
	if err != nil {
		return "", err
	}

	prev := s.Selection
	s.Selection = sel
	if c == DineIn {
		s.DineInOption = option
	} else {
		s.DeliveryOption = option
	}
	s.touch()

	log.Printf("[SELECTION] %s → %s (restaurant=%q kept)", prev, sel, s.ChosenRestaurant)
	return sel.Field(), nil
}

// ConfirmRestaurant records the restaurant picked from the candidate list.
func (s *State) ConfirmRestaurant(name string) error {
	if s.Selection.IsNone() {
		return ErrNoFieldChosen
	}
	if name == "" {
		return ErrEmptyRestaurant
	}

	s.ChosenRestaurant = name
	s.LastSubmission = nil
	s.touch()
	return nil
}

// RecordSubmission moves the session to FeedbackSubmitted. The selection
// and restaurant stay as they are so another record can be sent.
func (s *State) RecordSubmission(id string) error {
	if s.ChosenRestaurant == "" {
		return ErrNoRestaurantChosen
	}

	now := time.Now().UTC()
	s.LastSubmission = &Submission{
		ID:          id,
		Restaurant:  s.ChosenRestaurant,
		SubmittedAt: now,
	}
	s.UpdatedAt = now
	return nil
}

func (s *State) touch() {
	s.UpdatedAt = time.Now().UTC()
}
