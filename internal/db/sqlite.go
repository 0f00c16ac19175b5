package db

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SampleLocation mirrors the warehouse locations table for the local
// sqlite driver.
type SampleLocation struct {
	LocationID                   string     `gorm:"column:location_id;primaryKey"`
	LocationName                 string     `gorm:"column:location_name"`
	LocationFullAddress          string     `gorm:"column:location_full_address"`
	LocationClosedDate           *time.Time `gorm:"column:location_closed_date"`
	LocationZipPostal            string     `gorm:"column:location_zip_postal"`
	LocationDeliveryDoorDash     int        `gorm:"column:location_delivery_door_dash"`
	LocationDeliveryPostMates    int        `gorm:"column:location_delivery_post_mates"`
	LocationDeliveryUberEats     int        `gorm:"column:location_delivery_uber_eats"`
	LocationReservationGoogle    int        `gorm:"column:location_reservation_google"`
	LocationReservationOpenTable int        `gorm:"column:location_reservation_open_table"`
	LocationReservationResy      int        `gorm:"column:location_reservation_resy"`
}

func OpenSQLite(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Opened sqlite warehouse at %s", path)
	return database, nil
}

// SeedLocations creates table and fills it with sample rows when empty.
func SeedLocations(database *gorm.DB, table string) error {
	if err := database.Table(table).AutoMigrate(&SampleLocation{}); err != nil {
		return err
	}

	var n int64
	if err := database.Table(table).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	rows := sampleLocations()
	if err := database.Table(table).Create(&rows).Error; err != nil {
		return err
	}

	log.Printf("[DB] seeded %d sample locations into %s", len(rows), table)
	return nil
}

func sampleLocations() []SampleLocation {
	closed := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)

	return []SampleLocation{
		{LocationID: "1", LocationName: "Bestia", LocationFullAddress: "2121 E 7th Pl, Los Angeles, CA 90021", LocationZipPostal: "90021",
			LocationDeliveryDoorDash: 1, LocationReservationOpenTable: 1, LocationReservationResy: 1},
		{LocationID: "2", LocationName: "Guelaguetza", LocationFullAddress: "3014 W Olympic Blvd, Los Angeles, CA 90006", LocationZipPostal: "90006",
			LocationDeliveryDoorDash: 1, LocationDeliveryUberEats: 1, LocationReservationGoogle: 1},
		{LocationID: "3", LocationName: "Howlin' Ray's", LocationFullAddress: "727 N Broadway #128, Los Angeles, CA 90012", LocationZipPostal: "90012",
			LocationDeliveryPostMates: 1},
		{LocationID: "4", LocationName: "Sqirl", LocationFullAddress: "720 N Virgil Ave #4, Los Angeles, CA 90029", LocationZipPostal: "90029",
			LocationClosedDate: &closed, LocationDeliveryDoorDash: 1, LocationReservationGoogle: 1},
		{LocationID: "5", LocationName: "Republique", LocationFullAddress: "624 S La Brea Ave, Los Angeles, CA 90036", LocationZipPostal: "90036",
			LocationReservationResy: 1, LocationReservationGoogle: 1},
		{LocationID: "6", LocationName: "Guelaguetza", LocationFullAddress: "11127 Palms Blvd, Los Angeles, CA 90034", LocationZipPostal: "90034",
			LocationDeliveryUberEats: 1},
		{LocationID: "7", LocationName: "Kismet", LocationFullAddress: "4648 Hollywood Blvd, Los Angeles, CA 90027", LocationZipPostal: "90027",
			LocationDeliveryDoorDash: 1, LocationDeliveryPostMates: 1, LocationReservationOpenTable: 1},
		{LocationID: "8", LocationName: "Leo's Tacos Truck", LocationFullAddress: "1515 S La Brea Ave, Los Angeles, CA 90019", LocationZipPostal: "90019"},
	}
}
