package feedback

import (
	"context"
	"log"

	"gorm.io/gorm"
)

type feedbackRow struct {
	LocationID      string `gorm:"column:location_id"`
	LocationName    string `gorm:"column:location_name"`
	LocationAddress string `gorm:"column:location_address"`
	UserComments    string `gorm:"column:user_comments"`
	UserRating      string `gorm:"column:user_rating"`
}

// GormRepository stores feedback in a local sqlite file. The file is the
// database, so EnsureDatabase has nothing to create.
type GormRepository struct {
	db    *gorm.DB
	table string
}

func NewGormRepository(db *gorm.DB, table string) *GormRepository {
	return &GormRepository{db: db, table: table}
}

func (r *GormRepository) EnsureDatabase(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT 1").Error
}

func (r *GormRepository) EnsureTable(ctx context.Context) error {
	return r.db.WithContext(ctx).Table(r.table).AutoMigrate(&feedbackRow{})
}

func (r *GormRepository) Append(ctx context.Context, record Record) error {
	row := feedbackRow(record)
	if err := r.db.WithContext(ctx).Table(r.table).Create(&row).Error; err != nil {
		return err
	}

	log.Printf("[FEEDBACK] appended row to %s", r.table)
	return nil
}

func (r *GormRepository) History(ctx context.Context) ([]Record, error) {
	var rows []feedbackRow
	if err := r.db.WithContext(ctx).Table(r.table).Order("rowid").Find(&rows).Error; err != nil {
		return nil, err
	}

	history := make([]Record, 0, len(rows))
	for _, row := range rows {
		history = append(history, Record(row))
	}
	return history, nil
}
