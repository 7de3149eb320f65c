// Package status records lightweight client status-check events.
package status

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Check is a single recorded client status-check event.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// listLimit bounds how many events a single list call returns.
const listLimit = 1000

// Repository handles status-check persistence.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new status Repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new status check and returns the stored record.
func (r *Repository) Create(ctx context.Context, clientName string) (*Check, error) {
	c := &Check{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO status_checks (client_name)
		 VALUES ($1)
		 RETURNING id, client_name, created_at`,
		clientName,
	).Scan(&c.ID, &c.ClientName, &c.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert status check: %w", err)
	}
	return c, nil
}

// List returns the most recent status checks, newest first.
func (r *Repository) List(ctx context.Context) ([]Check, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_name, created_at
		 FROM status_checks
		 ORDER BY created_at DESC
		 LIMIT $1`,
		listLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	checks := make([]Check, 0)
	for rows.Next() {
		var c Check
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}
