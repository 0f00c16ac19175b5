package location

import (
	"context"
	"errors"
	"testing"

	"whateating/internal/db"
	"whateating/internal/selection"
)

const sampleTable = "locations_sample"

func seededGormRepository(t *testing.T) *GormRepository {
	t.Helper()

	gdb, err := db.OpenSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := db.SeedLocations(gdb, sampleTable); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewGormRepository(gdb, sampleTable)
}

func TestGormRepository_Counts(t *testing.T) {
	repo := seededGormRepository(t)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 8 {
		t.Fatalf("expected 8 seeded rows, got %d", len(all))
	}

	open, err := repo.ListOpen(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range open {
		if !l.IsOpen() {
			t.Fatalf("closed location %s listed as open", l.ID)
		}
	}

	counts := []struct {
		name string
		fn   func(context.Context) (int, error)
		want int
	}{
		{"open", repo.CountOpen, 7},
		{"zips", repo.CountOpenZipCodes, 7},
		{"delivery", repo.CountOpenWithDelivery, 5},
		{"dine-in", repo.CountOpenWithReservation, 4},
	}
	for _, c := range counts {
		got, err := c.fn(ctx)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestGormRepository_Candidates(t *testing.T) {
	repo := seededGormRepository(t)
	ctx := context.Background()

	// Sqirl offers Door Dash but is closed
	names, err := repo.DistinctOpenNamesWhere(ctx, selection.FieldDoorDash)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Bestia", "Guelaguetza", "Kismet"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	// two Guelaguetza rows collapse to one name
	names, err = repo.DistinctOpenNamesWhere(ctx, selection.FieldUberEats)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "Guelaguetza" {
		t.Fatalf("expected [Guelaguetza], got %v", names)
	}

	if _, err := repo.DistinctOpenNamesWhere(ctx, selection.Field("location_name")); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestGormRepository_FirstMatchDetail(t *testing.T) {
	repo := seededGormRepository(t)
	ctx := context.Background()

	l, err := repo.FindOpenByName(ctx, selection.FieldUberEats, "Guelaguetza")
	if err != nil {
		t.Fatal(err)
	}
	if l.ID != "2" {
		t.Fatalf("expected first match id 2, got %s", l.ID)
	}

	// only the Palms Blvd row lacks Google, so Google finds the Olympic one
	l, err = repo.FindOpenByName(ctx, selection.FieldGoogle, "Guelaguetza")
	if err != nil {
		t.Fatal(err)
	}
	if l.FullAddress != "3014 W Olympic Blvd, Los Angeles, CA 90006" {
		t.Fatalf("unexpected address %q", l.FullAddress)
	}

	if _, err := repo.FindOpenByName(ctx, selection.FieldDoorDash, "Sqirl"); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("closed location should not be found, got %v", err)
	}
}

func TestGormRepository_SeedIsIdempotent(t *testing.T) {
	gdb, err := db.OpenSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	for i := 0; i < 2; i++ {
		if err := db.SeedLocations(gdb, sampleTable); err != nil {
			t.Fatal(err)
		}
	}

	n, err := NewGormRepository(gdb, sampleTable).CountOpen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("expected 7 open after seeding twice, got %d", n)
	}
}
