package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgxpool.Pool the repository needs. Declared so
// tests can substitute a pgxmock pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores appointments in the relational database.
type PostgresRepository struct {
	pool DB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("appointments: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// NewPostgresRepositoryWithDB allows injecting mocks for tests.
func NewPostgresRepositoryWithDB(pool DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new row inside a scoped transaction. The write
// either commits fully or rolls back, leaving no partial row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("appointments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.New()
	query := `
		INSERT INTO appointments (id, requester_id, name, phone, scheduled_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := tx.QueryRow(ctx, query,
		id,
		req.RequesterID,
		req.Name,
		req.Phone,
		req.ScheduledAt,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("appointments: insert failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("appointments: commit failed: %w", err)
	}

	return &Appointment{
		ID:          id,
		RequesterID: req.RequesterID,
		Name:        req.Name,
		Phone:       req.Phone,
		ScheduledAt: req.ScheduledAt,
		CreatedAt:   createdAt,
	}, nil
}

// ListByRequester fetches the requester's appointments, soonest first.
func (r *PostgresRepository) ListByRequester(ctx context.Context, requesterID int64) ([]Appointment, error) {
	query := `
		SELECT id, requester_id, name, phone, scheduled_at, created_at
		FROM appointments
		WHERE requester_id = $1
		ORDER BY scheduled_at ASC
	`
	rows, err := r.pool.Query(ctx, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("appointments: select failed: %w", err)
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var appt Appointment
		if err := rows.Scan(
			&appt.ID,
			&appt.RequesterID,
			&appt.Name,
			&appt.Phone,
			&appt.ScheduledAt,
			&appt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("appointments: scan failed: %w", err)
		}
		out = append(out, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("appointments: rows failed: %w", err)
	}
	return out, nil
}
