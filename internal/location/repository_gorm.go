package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"whateating/internal/selection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository serves the same reads from a gorm database (the local
// sqlite warehouse).
type GormRepository struct {
	db    *gorm.DB
	table string
}

func NewGormRepository(db *gorm.DB, table string) *GormRepository {
	return &GormRepository{db: db, table: table}
}

func (r *GormRepository) scope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *GormRepository) open(ctx context.Context) *gorm.DB {
	return r.scope(ctx).Where("location_closed_date IS NULL")
}

func (r *GormRepository) ListAll(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := r.scope(ctx).Order("location_id").Find(&locations).Error
	return locations, err
}

func (r *GormRepository) ListOpen(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := r.open(ctx).Order("location_id").Find(&locations).Error
	return locations, err
}

func (r *GormRepository) CountOpen(ctx context.Context) (int, error) {
	var n int64
	err := r.open(ctx).Count(&n).Error
	return int(n), err
}

func (r *GormRepository) CountOpenZipCodes(ctx context.Context) (int, error) {
	var zips []*string
	if err := r.open(ctx).Distinct("location_zip_postal").Pluck("location_zip_postal", &zips).Error; err != nil {
		return 0, err
	}
	return len(zips), nil
}

func (r *GormRepository) CountOpenWithDelivery(ctx context.Context) (int, error) {
	var n int64
	err := r.open(ctx).
		Where("location_delivery_door_dash + location_delivery_post_mates + location_delivery_uber_eats > 0").
		Count(&n).Error
	return int(n), err
}

func (r *GormRepository) CountOpenWithReservation(ctx context.Context) (int, error) {
	var n int64
	err := r.open(ctx).
		Where("location_reservation_google + location_reservation_open_table + location_reservation_resy > 0").
		Count(&n).Error
	return int(n), err
}

func (r *GormRepository) DistinctOpenNamesWhere(
	ctx context.Context,
	field selection.Field,
) ([]string, error) {

	cond, err := flagIsSet(field)
	if err != nil {
		return nil, err
	}

	var names []string
	err = r.open(ctx).
		Where(cond).
		Where("location_name IS NOT NULL").
		Distinct("location_name").
		Order("location_name").
		Pluck("location_name", &names).Error
	return names, err
}

func (r *GormRepository) FindOpenByName(
	ctx context.Context,
	field selection.Field,
	name string,
) (*Location, error) {

	cond, err := flagIsSet(field)
	if err != nil {
		return nil, err
	}

	var l Location
	err = r.open(ctx).
		Where(cond).
		Where("location_name = ?", name).
		Order("location_id").
		Take(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	return &l, nil
}

func flagIsSet(field selection.Field) (clause.Expression, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return clause.Eq{
		Column: clause.Column{Name: strings.ToLower(string(field))},
		Value:  1,
	}, nil
}
