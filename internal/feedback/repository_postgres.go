package feedback

import (
	"context"
	"fmt"
	"log"

	"whateating/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository keeps feedback in <database>.<table>, where the
// database maps onto a Postgres schema.
type PostgresRepository struct {
	db       *pgxpool.Pool
	database string
	table    string
}

func NewPostgresRepository(pool *pgxpool.Pool, database, table string) *PostgresRepository {
	return &PostgresRepository{
		db:       pool,
		database: db.Ident(database),
		table:    db.Ident(database + "." + table),
	}
}

func (r *PostgresRepository) EnsureDatabase(ctx context.Context) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, r.database))
	return err
}

func (r *PostgresRepository) EnsureTable(ctx context.Context) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			location_id VARCHAR,
			location_name VARCHAR,
			location_address VARCHAR,
			user_comments VARCHAR,
			user_rating VARCHAR
		)
	`, r.table))
	return err
}

func (r *PostgresRepository) Append(ctx context.Context, record Record) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (
			location_id,
			location_name,
			location_address,
			user_comments,
			user_rating
		)
		VALUES ($1, $2, $3, $4, $5)
	`, r.table),
		record.LocationID,
		record.LocationName,
		record.LocationAddress,
		record.UserComments,
		record.UserRating,
	)
	if err != nil {
		return err
	}

	log.Printf("[FEEDBACK] appended row to %s", r.table)
	return nil
}

// History orders by physical row position; the table is never updated,
// so that is insertion order.
func (r *PostgresRepository) History(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT
			COALESCE(location_id, ''),
			COALESCE(location_name, ''),
			COALESCE(location_address, ''),
			COALESCE(user_comments, ''),
			COALESCE(user_rating, '')
		FROM %s
		ORDER BY ctid
	`, r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.LocationID,
			&rec.LocationName,
			&rec.LocationAddress,
			&rec.UserComments,
			&rec.UserRating,
		); err != nil {
			return nil, err
		}
		history = append(history, rec)
	}

	return history, rows.Err()
}
