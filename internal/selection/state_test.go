package selection

import (
	"errors"
	"testing"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState()

	if s.Stage() != NoSelection {
		t.Fatalf("expected %s, got %s", NoSelection, s.Stage())
	}
	if s.ChosenField() != "" {
		t.Errorf("expected empty chosen field, got %q", s.ChosenField())
	}
	if s.ChosenRestaurant != "" {
		t.Errorf("expected empty restaurant, got %q", s.ChosenRestaurant)
	}
	if s.DeliveryOption != "Door Dash" || s.DineInOption != "Google" {
		t.Errorf("unexpected radio defaults %q / %q", s.DeliveryOption, s.DineInOption)
	}
}

func TestConfirmOption_OtherColumnOverwrites(t *testing.T) {
	s := NewState()

	if _, err := s.ConfirmOption(Delivery, "Uber Eats"); err != nil {
		t.Fatal(err)
	}
	if s.ChosenField() != FieldUberEats {
		t.Fatalf("expected %s, got %s", FieldUberEats, s.ChosenField())
	}

	f, err := s.ConfirmOption(DineIn, "Open Table")
	if err != nil {
		t.Fatal(err)
	}
	if f != FieldOpenTable || s.ChosenField() != FieldOpenTable {
		t.Fatalf("expected dine-in to overwrite delivery, got %s", s.ChosenField())
	}
	if s.Selection.Category != DineIn {
		t.Fatalf("expected category %s, got %s", DineIn, s.Selection.Category)
	}
	// radio position of the other column is untouched
	if s.DeliveryOption != "Uber Eats" {
		t.Errorf("delivery radio moved to %q", s.DeliveryOption)
	}
	if s.Stage() != FieldChosen {
		t.Errorf("expected %s, got %s", FieldChosen, s.Stage())
	}
}

func TestConfirmOption_InvalidLeavesStateAlone(t *testing.T) {
	s := NewState()
	_, _ = s.ConfirmOption(Delivery, "Postmates")

	if _, err := s.ConfirmOption(DineIn, "Postmates"); err == nil {
		t.Fatal("expected error")
	}
	if s.ChosenField() != FieldPostMates {
		t.Fatalf("selection changed after invalid confirm: %s", s.ChosenField())
	}
}

func TestConfirmRestaurant_RequiresField(t *testing.T) {
	s := NewState()

	if err := s.ConfirmRestaurant("A"); !errors.Is(err, ErrNoFieldChosen) {
		t.Fatalf("expected ErrNoFieldChosen, got %v", err)
	}

	_, _ = s.ConfirmOption(Delivery, "Door Dash")
	if err := s.ConfirmRestaurant(""); !errors.Is(err, ErrEmptyRestaurant) {
		t.Fatalf("expected ErrEmptyRestaurant, got %v", err)
	}
	if err := s.ConfirmRestaurant("A"); err != nil {
		t.Fatal(err)
	}
	if s.Stage() != RestaurantChosen {
		t.Fatalf("expected %s, got %s", RestaurantChosen, s.Stage())
	}
}

func TestConfirmOption_KeepsStaleRestaurant(t *testing.T) {
	s := NewState()
	_, _ = s.ConfirmOption(Delivery, "Door Dash")
	_ = s.ConfirmRestaurant("A")

	_, _ = s.ConfirmOption(DineIn, "Resy")

	if s.ChosenRestaurant != "A" {
		t.Fatalf("expected restaurant to survive a field change, got %q", s.ChosenRestaurant)
	}
	if s.Stage() != RestaurantChosen {
		t.Fatalf("expected %s, got %s", RestaurantChosen, s.Stage())
	}
}

func TestRecordSubmission_Transitions(t *testing.T) {
	s := NewState()

	if err := s.RecordSubmission("x"); !errors.Is(err, ErrNoRestaurantChosen) {
		t.Fatalf("expected ErrNoRestaurantChosen, got %v", err)
	}

	_, _ = s.ConfirmOption(Delivery, "Door Dash")
	_ = s.ConfirmRestaurant("A")

	if err := s.RecordSubmission("first"); err != nil {
		t.Fatal(err)
	}
	if s.Stage() != FeedbackSubmitted {
		t.Fatalf("expected %s, got %s", FeedbackSubmitted, s.Stage())
	}

	// a second submit is allowed and does not reset anything
	if err := s.RecordSubmission("second"); err != nil {
		t.Fatal(err)
	}
	if s.LastSubmission.ID != "second" || s.ChosenRestaurant != "A" || s.ChosenField() != FieldDoorDash {
		t.Fatalf("state reset after submit: %+v", s)
	}

	// choosing a restaurant again starts a new round
	_ = s.ConfirmRestaurant("B")
	if s.Stage() != RestaurantChosen {
		t.Fatalf("expected %s, got %s", RestaurantChosen, s.Stage())
	}
}
