package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Place kinds stored in the places.kind column.
const (
	kindBeach  = "beach"
	kindTemple = "temple"
	kindCity   = "city"
)

// PostgresRepo reads the dataset from the countries and places tables
// and can replace their contents from a Dataset.
type PostgresRepo struct {
	db db
}

// NewPostgresRepo constructs a PostgresRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; for Replace pass a pgx.Tx so the rewrite is atomic.
func NewPostgresRepo(db db) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Load assembles the dataset. Beaches, temples, countries and each
// country's cities come back in ascending position order.
func (r *PostgresRepo) Load(ctx context.Context) (domain.Dataset, error) {
	countries, index, err := r.loadCountries(ctx)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.PostgresRepo.Load: %w", err)
	}

	const q = `
		SELECT kind, country_id, name, image_url, description, COALESCE(time_zone, '')
		FROM places
		ORDER BY position, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.PostgresRepo.Load: %w", err)
	}
	defer rows.Close()

	ds := domain.Dataset{
		Beaches:   []domain.Place{},
		Temples:   []domain.Place{},
		Countries: countries,
	}
	for rows.Next() {
		var (
			kind      string
			countryID pgtype.UUID
			p         domain.Place
		)
		if err := rows.Scan(&kind, &countryID, &p.Name, &p.ImageURL, &p.Description, &p.TimeZone); err != nil {
			return domain.Dataset{}, fmt.Errorf("repo.PostgresRepo.Load: scan: %w", err)
		}

		switch kind {
		case kindBeach:
			ds.Beaches = append(ds.Beaches, p)
		case kindTemple:
			ds.Temples = append(ds.Temples, p)
		case kindCity:
			i, ok := index[uuid.UUID(countryID.Bytes)]
			if !countryID.Valid || !ok {
				return domain.Dataset{}, fmt.Errorf("repo.PostgresRepo.Load: %w: city %q has no country", domain.ErrValidation, p.Name)
			}
			ds.Countries[i].Cities = append(ds.Countries[i].Cities, p)
		default:
			return domain.Dataset{}, fmt.Errorf("repo.PostgresRepo.Load: %w: unknown place kind %q", domain.ErrValidation, kind)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.PostgresRepo.Load: %w", err)
	}

	return ds, nil
}

// loadCountries returns the countries in position order plus an index from
// country ID to slice position.
func (r *PostgresRepo) loadCountries(ctx context.Context) ([]domain.Country, map[uuid.UUID]int, error) {
	const q = `
		SELECT id, name
		FROM countries
		ORDER BY position, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	countries := []domain.Country{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id   pgtype.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, fmt.Errorf("scan country: %w", err)
		}
		index[uuid.UUID(id.Bytes)] = len(countries)
		countries = append(countries, domain.Country{Name: name, Cities: []domain.Place{}})
	}
	return countries, index, rows.Err()
}

// Replace deletes every stored place and country and inserts ds in their place.
// Slice order becomes the stored position. Run it inside a transaction.
func (r *PostgresRepo) Replace(ctx context.Context, ds domain.Dataset) error {
	// places references countries, so delete children first.
	if _, err := r.db.Exec(ctx, `DELETE FROM places`); err != nil {
		return fmt.Errorf("repo.PostgresRepo.Replace: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM countries`); err != nil {
		return fmt.Errorf("repo.PostgresRepo.Replace: %w", err)
	}

	for i, p := range ds.Beaches {
		if err := r.insertPlace(ctx, kindBeach, nil, i, p); err != nil {
			return fmt.Errorf("repo.PostgresRepo.Replace: %w", err)
		}
	}
	for i, p := range ds.Temples {
		if err := r.insertPlace(ctx, kindTemple, nil, i, p); err != nil {
			return fmt.Errorf("repo.PostgresRepo.Replace: %w", err)
		}
	}

	const insertCountry = `
		INSERT INTO countries (name, position)
		VALUES (@name, @position)
		RETURNING id`

	for i, c := range ds.Countries {
		var id pgtype.UUID
		err := r.db.QueryRow(ctx, insertCountry, pgx.NamedArgs{"name": c.Name, "position": i}).Scan(&id)
		if err != nil {
			return fmt.Errorf("repo.PostgresRepo.Replace: insert country %q: %w", c.Name, err)
		}
		countryID := uuid.UUID(id.Bytes)
		for j, city := range c.Cities {
			if err := r.insertPlace(ctx, kindCity, &countryID, j, city); err != nil {
				return fmt.Errorf("repo.PostgresRepo.Replace: %w", err)
			}
		}
	}
	return nil
}

func (r *PostgresRepo) insertPlace(ctx context.Context, kind string, countryID *uuid.UUID, position int, p domain.Place) error {
	const q = `
		INSERT INTO places (kind, country_id, name, image_url, description, time_zone, position)
		VALUES (@kind, @country_id, @name, @image_url, @description, NULLIF(@time_zone, ''), @position)`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"kind":        kind,
		"country_id":  countryID,
		"name":        p.Name,
		"image_url":   p.ImageURL,
		"description": p.Description,
		"time_zone":   p.TimeZone,
		"position":    position,
	})
	if err != nil {
		return fmt.Errorf("insert %s %q: %w", kind, p.Name, err)
	}
	return nil
}
