package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"whateating/internal/db"
	"whateating/internal/selection"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `
	location_id::text,
	COALESCE(location_name, ''),
	COALESCE(location_full_address, ''),
	location_closed_date,
	COALESCE(location_zip_postal::text, ''),
	COALESCE(location_delivery_door_dash, 0),
	COALESCE(location_delivery_post_mates, 0),
	COALESCE(location_delivery_uber_eats, 0),
	COALESCE(location_reservation_google, 0),
	COALESCE(location_reservation_open_table, 0),
	COALESCE(location_reservation_resy, 0)
`

type PostgresRepository struct {
	db    *pgxpool.Pool
	table string
}

// NewPostgresRepository reads from table, given as "schema.table".
func NewPostgresRepository(pool *pgxpool.Pool, table string) *PostgresRepository {
	return &PostgresRepository{db: pool, table: db.Ident(table)}
}

// --------------------------------------------------
// Raw views
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Location, error) {
	return r.list(ctx, "")
}

func (r *PostgresRepository) ListOpen(ctx context.Context) ([]Location, error) {
	return r.list(ctx, "WHERE location_closed_date IS NULL")
}

func (r *PostgresRepository) list(ctx context.Context, where string) ([]Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY location_id`, selectColumns, r.table, where)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *l)
	}

	return locations, rows.Err()
}

// --------------------------------------------------
// Metrics
// --------------------------------------------------
func (r *PostgresRepository) CountOpen(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM %s WHERE location_closed_date IS NULL`)
}

func (r *PostgresRepository) CountOpenZipCodes(ctx context.Context) (int, error) {
	// distinct rows, so a missing zip counts as one value
	return r.count(ctx, `
		SELECT COUNT(*) FROM (
			SELECT DISTINCT location_zip_postal
			FROM %s
			WHERE location_closed_date IS NULL
		) z
	`)
}

func (r *PostgresRepository) CountOpenWithDelivery(ctx context.Context) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM %s
		WHERE location_closed_date IS NULL
		  AND (location_delivery_door_dash
		     + location_delivery_post_mates
		     + location_delivery_uber_eats) > 0
	`)
}

func (r *PostgresRepository) CountOpenWithReservation(ctx context.Context) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM %s
		WHERE location_closed_date IS NULL
		  AND (location_reservation_google
		     + location_reservation_open_table
		     + location_reservation_resy) > 0
	`)
}

func (r *PostgresRepository) count(ctx context.Context, queryFmt string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, fmt.Sprintf(queryFmt, r.table)).Scan(&n)
	return n, err
}

// --------------------------------------------------
// Candidate workflow
// --------------------------------------------------
func (r *PostgresRepository) DistinctOpenNamesWhere(
	ctx context.Context,
	field selection.Field,
) ([]string, error) {

	col, err := flagColumn(field)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT DISTINCT location_name
		FROM %s
		WHERE location_closed_date IS NULL
		  AND location_name IS NOT NULL
		  AND %s = 1
		ORDER BY location_name
	`, r.table, col))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (r *PostgresRepository) FindOpenByName(
	ctx context.Context,
	field selection.Field,
	name string,
) (*Location, error) {

	col, err := flagColumn(field)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE location_closed_date IS NULL
		  AND %s = 1
		  AND location_name = $1
		ORDER BY location_id
		LIMIT 1
	`, selectColumns, r.table, col), name)

	l, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	return l, nil
}

func scanLocation(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.FullAddress,
		&l.ClosedDate,
		&l.ZipPostal,
		&l.DoorDash,
		&l.PostMates,
		&l.UberEats,
		&l.Google,
		&l.OpenTable,
		&l.Resy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// flagColumn only lets whitelisted fields into generated SQL.
func flagColumn(field selection.Field) (string, error) {
	if !field.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return pgx.Identifier{strings.ToLower(string(field))}.Sanitize(), nil
}
