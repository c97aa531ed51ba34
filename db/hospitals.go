package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"go-healthnav/types"
)

// DBPool is the minimal subset of pgxpool.Pool the repo uses, so tests
// can substitute pgxmock.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS hospitals (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    eta  TEXT NOT NULL DEFAULT 'N/A',
    tags TEXT NOT NULL DEFAULT '',
    lat  DOUBLE PRECISION NOT NULL DEFAULT 0,
    lng  DOUBLE PRECISION NOT NULL DEFAULT 0,
    type TEXT NOT NULL DEFAULT 'hospital'
)`

// SeedHospitals is the demo dataset loaded on first boot when the
// table is empty. Tags stay comma-separated in the column.
var SeedHospitals = []types.Hospital{
	{ID: "hosp_001", Name: "City General Hospital", ETA: "6 min", Tags: []string{"Emergency", "Surgery", "Cardiology", "Pediatrics"}, Lat: 40.7128, Lng: -74.0060, Type: "hospital"},
	{ID: "hosp_002", Name: "Bayview Medical Center", ETA: "9 min", Tags: []string{"Stroke Center", "Neurology", "ICU"}, Lat: 40.7589, Lng: -73.9851, Type: "hospital"},
	{ID: "hosp_003", Name: "St. Mary Regional", ETA: "12 min", Tags: []string{"Trauma", "Orthopedics", "Emergency"}, Lat: 40.7489, Lng: -73.9680, Type: "hospital"},
	{ID: "urgent_001", Name: "Express Urgent Care", ETA: "8 min", Tags: []string{"Urgent Care", "X-Ray", "Lab Tests"}, Lat: 40.7280, Lng: -73.9942, Type: "urgent_care"},
}

// HospitalRepo handles hospital persistence.
type HospitalRepo struct {
	pool DBPool
}

func NewHospitalRepo(pool DBPool) *HospitalRepo {
	return &HospitalRepo{pool: pool}
}

// EnsureSchema creates the hospitals table if it does not exist yet.
func (r *HospitalRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("creating hospitals table: %w", err)
	}
	return nil
}

// Seed inserts the demo hospitals when the table is empty. A non-empty
// table is left alone.
func (r *HospitalRepo) Seed(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&count); err != nil {
		return fmt.Errorf("counting hospitals: %w", err)
	}
	if count > 0 {
		log.Printf("hospitals table already has %d rows, skipping seed", count)
		return nil
	}

	for _, h := range SeedHospitals {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO hospitals (id, name, eta, tags, lat, lng, type)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			h.ID, h.Name, h.ETA, types.JoinTags(h.Tags), h.Lat, h.Lng, h.Type,
		)
		if err != nil {
			return fmt.Errorf("seeding hospital %s: %w", h.ID, err)
		}
	}
	log.Printf("seeded %d hospitals", len(SeedHospitals))
	return nil
}

// List returns every hospital with tags split out of the column.
func (r *HospitalRepo) List(ctx context.Context) ([]types.Hospital, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, eta, tags, lat, lng, type FROM hospitals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing hospitals: %w", err)
	}
	defer rows.Close()

	var hospitals []types.Hospital
	for rows.Next() {
		var h types.Hospital
		var rawTags string
		if err := rows.Scan(&h.ID, &h.Name, &h.ETA, &rawTags, &h.Lat, &h.Lng, &h.Type); err != nil {
			return nil, err
		}
		h.Tags = types.SplitTags(rawTags)
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}

// Get returns one hospital by id. Returns (nil, nil) if not found.
func (r *HospitalRepo) Get(ctx context.Context, id string) (*types.Hospital, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, eta, tags, lat, lng, type FROM hospitals WHERE id = $1`, id)

	var h types.Hospital
	var rawTags string
	err := row.Scan(&h.ID, &h.Name, &h.ETA, &rawTags, &h.Lat, &h.Lng, &h.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	h.Tags = types.SplitTags(rawTags)
	return &h, nil
}

// UpdateETA rewrites the stored ETA string for one hospital. Used by
// the periodic refresh job.
func (r *HospitalRepo) UpdateETA(ctx context.Context, id, eta string) error {
	_, err := r.pool.Exec(ctx, `UPDATE hospitals SET eta = $2 WHERE id = $1`, id, eta)
	return err
}
