package selection

import (
	"errors"
	"testing"
)

func TestResolve_MappingIsBijective(t *testing.T) {
	seen := make(map[Field]string)

	for _, c := range Categories() {
		for _, opt := range Options(c) {
			f, err := Resolve(c, opt)
			if err != nil {
				t.Fatalf("resolve %s/%s: %v", c, opt, err)
			}
			if prev, dup := seen[f]; dup {
				t.Fatalf("field %s produced by both %s and %s/%s", f, prev, c, opt)
			}
			seen[f] = string(c) + "/" + opt
		}
	}

	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct fields, got %d", len(seen))
	}
	if len(AllFields()) != 6 {
		t.Fatalf("expected AllFields to list 6 fields, got %d", len(AllFields()))
	}
}

func TestResolve_KnownPairs(t *testing.T) {
	cases := []struct {
		category Category
		option   string
		want     Field
	}{
		{Delivery, "Door Dash", FieldDoorDash},
		{Delivery, "Postmates", FieldPostMates},
		{Delivery, "Uber Eats", FieldUberEats},
		{DineIn, "Google", FieldGoogle},
		{DineIn, "Open Table", FieldOpenTable},
		{DineIn, "Resy", FieldResy},
	}

	for _, tc := range cases {
		got, err := Resolve(tc.category, tc.option)
		if err != nil {
			t.Fatalf("%s/%s: unexpected error %v", tc.category, tc.option, err)
		}
		if got != tc.want {
			t.Errorf("%s/%s: expected %s, got %s", tc.category, tc.option, tc.want, got)
		}
	}
}

func TestResolve_OptionFromOtherCategory(t *testing.T) {
	_, err := Resolve(Delivery, "Resy")
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}

	_, err = Resolve(Category("Takeaway"), "Resy")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"delivery": Delivery,
		"Delivery": Delivery,
		"dine-in":  DineIn,
		"Dine-in":  DineIn,
		"dinein":   DineIn,
	} {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q) = %q, %v", in, got, err)
		}
	}

	if _, err := ParseCategory("pickup"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestSelection_NoneHasNoField(t *testing.T) {
	if !None.IsNone() {
		t.Fatal("None should report IsNone")
	}
	if None.Field() != "" {
		t.Fatalf("expected empty field, got %q", None.Field())
	}
	if FieldResy.Valid() != true || Field("LOCATION_NAME").Valid() {
		t.Fatal("field whitelist is wrong")
	}
}
