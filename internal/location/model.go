package location

import (
	"time"

	"whateating/internal/selection"
)

// Location is one row of the read-only restaurant locations table.
type Location struct {
	ID          string     `json:"location_id" gorm:"column:location_id;primaryKey"`
	Name        string     `json:"location_name" gorm:"column:location_name"`
	FullAddress string     `json:"location_full_address" gorm:"column:location_full_address"`
	ClosedDate  *time.Time `json:"location_closed_date" gorm:"column:location_closed_date"`
	ZipPostal   string     `json:"location_zip_postal" gorm:"column:location_zip_postal"`

	DoorDash  int `json:"location_delivery_door_dash" gorm:"column:location_delivery_door_dash"`
	PostMates int `json:"location_delivery_post_mates" gorm:"column:location_delivery_post_mates"`
	UberEats  int `json:"location_delivery_uber_eats" gorm:"column:location_delivery_uber_eats"`

	Google    int `json:"location_reservation_google" gorm:"column:location_reservation_google"`
	OpenTable int `json:"location_reservation_open_table" gorm:"column:location_reservation_open_table"`
	Resy      int `json:"location_reservation_resy" gorm:"column:location_reservation_resy"`
}

// IsOpen: a location is open iff no closed date is recorded.
func (l Location) IsOpen() bool {
	return l.ClosedDate == nil
}

func (l Location) DeliveryTotal() int {
	return l.DoorDash + l.PostMates + l.UberEats
}

func (l Location) ReservationTotal() int {
	return l.Google + l.OpenTable + l.Resy
}

// Flag returns the value of the given flag column, or 0 for an unknown field.
func (l Location) Flag(f selection.Field) int {
	switch f {
	case selection.FieldDoorDash:
		return l.DoorDash
	case selection.FieldPostMates:
		return l.PostMates
	case selection.FieldUberEats:
		return l.UberEats
	case selection.FieldGoogle:
		return l.Google
	case selection.FieldOpenTable:
		return l.OpenTable
	case selection.FieldResy:
		return l.Resy
	}
	return 0
}

// Detail is the single-row view used to pre-fill the feedback form.
type Detail struct {
	ID      string `json:"location_id"`
	Name    string `json:"location_name"`
	Address string `json:"location_address"`
}
