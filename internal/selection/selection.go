package selection

import (
	"errors"
	"fmt"
)

// Category is one of the two ways of eating: ordering in or dining out.
type Category string

const (
	Delivery Category = "Delivery"
	DineIn   Category = "Dine-in"
)

// Field is the flag column identifier a confirmed option maps to.
type Field string

const (
	FieldDoorDash  Field = "LOCATION_DELIVERY_DOOR_DASH"
	FieldPostMates Field = "LOCATION_DELIVERY_POST_MATES"
	FieldUberEats  Field = "LOCATION_DELIVERY_UBER_EATS"
	FieldGoogle    Field = "LOCATION_RESERVATION_GOOGLE"
	FieldOpenTable Field = "LOCATION_RESERVATION_OPEN_TABLE"
	FieldResy      Field = "LOCATION_RESERVATION_RESY"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOption   = errors.New("unknown option")
)

type mapping struct {
	option string
	field  Field
}

// radio order matters: the first option is the default position
var lookup = map[Category][]mapping{
	Delivery: {
		{"Door Dash", FieldDoorDash},
		{"Postmates", FieldPostMates},
		{"Uber Eats", FieldUberEats},
	},
	DineIn: {
		{"Google", FieldGoogle},
		{"Open Table", FieldOpenTable},
		{"Resy", FieldResy},
	},
}

// Categories returns both categories in page order.
func Categories() []Category {
	return []Category{Delivery, DineIn}
}

// ParseCategory accepts the display name or the URL slug.
func ParseCategory(s string) (Category, error) {
	switch s {
	case string(Delivery), "delivery":
		return Delivery, nil
	case string(DineIn), "dine-in", "dinein":
		return DineIn, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Slug is the path-friendly form of a category.
func (c Category) Slug() string {
	if c == DineIn {
		return "dine-in"
	}
	return "delivery"
}

// Options lists the provider names offered for a category.
func Options(c Category) []string {
	ms := lookup[c]
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.option)
	}
	return out
}

// DefaultOption is the option a radio group starts on.
func DefaultOption(c Category) string {
	ms := lookup[c]
	if len(ms) == 0 {
		return ""
	}
	return ms[0].option
}

// Resolve maps a (category, option) pair to its flag column.
func Resolve(c Category, option string) (Field, error) {
	ms, ok := lookup[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	for _, m := range ms {
		if m.option == option {
			return m.field, nil
		}
	}
	return "", fmt.Errorf("%w: %q for %s", ErrUnknownOption, option, c)
}

// AllFields returns the six flag columns, delivery first.
func AllFields() []Field {
	var out []Field
	for _, c := range Categories() {
		for _, m := range lookup[c] {
			out = append(out, m.field)
		}
	}
	return out
}

// Valid reports whether f is one of the known flag columns.
func (f Field) Valid() bool {
	for _, known := range AllFields() {
		if f == known {
			return true
		}
	}
	return false
}

// Selection is the confirmed (category, option) choice. The zero value
// means nothing has been confirmed yet.
type Selection struct {
	Category Category `json:"category,omitempty"`
	Option   string   `json:"option,omitempty"`
}

// None is the empty selection.
var None = Selection{}

// NewSelection validates the pair before building a selection.
func NewSelection(c Category, option string) (Selection, error) {
	if _, err := Resolve(c, option); err != nil {
		return None, err
	}
	return Selection{Category: c, Option: option}, nil
}

func (s Selection) IsNone() bool {
	return s == None
}

// Field returns the flag column, or "" for None.
func (s Selection) Field() Field {
	if s.IsNone() {
		return ""
	}
	f, err := Resolve(s.Category, s.Option)
	if err != nil {
		return ""
	}
	return f
}

func (s Selection) String() string {
	if s.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s(%s)", s.Category, s.Option)
}
