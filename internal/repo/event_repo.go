package repo

import (
	"context"
	"strings"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepo interface {
	Create(ctx context.Context, e dom.Event) (dom.Event, error)
	GetByID(ctx context.Context, id int64) (dom.Event, error)
	GetAll(ctx context.Context) ([]dom.Event, error)
	Update(ctx context.Context, e dom.Event) (dom.Event, error)
	Delete(ctx context.Context, id int64) error
}

type PGEventRepo struct {
	db *pgxpool.Pool
}

func NewPGEventRepo(db *pgxpool.Pool) *PGEventRepo {
	return &PGEventRepo{db: db}
}

const eventColumns = `id, name, date, recurrence_kind, recurrence_days, created_at, updated_at`

func (r *PGEventRepo) Create(ctx context.Context, e dom.Event) (dom.Event, error) {
	query := `
		INSERT INTO events (name, date, recurrence_kind, recurrence_days)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + eventColumns
	row := r.db.QueryRow(ctx, query, e.Name, e.Date, string(e.Recurrence.Kind), joinDays(e.Recurrence.Days))
	return scanEvent(row)
}

func (r *PGEventRepo) GetByID(ctx context.Context, id int64) (dom.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.QueryRow(ctx, query, id))
}

// GetAll returns every event in insertion order (ids are assigned
// monotonically, so id order is insertion order).
func (r *PGEventRepo) GetAll(ctx context.Context) ([]dom.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *PGEventRepo) Update(ctx context.Context, e dom.Event) (dom.Event, error) {
	query := `
		UPDATE events SET name = $2, date = $3, recurrence_kind = $4, recurrence_days = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + eventColumns
	row := r.db.QueryRow(ctx, query, e.ID, e.Name, e.Date, string(e.Recurrence.Kind), joinDays(e.Recurrence.Days))
	return scanEvent(row)
}

func (r *PGEventRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanEvent(row pgx.Row) (dom.Event, error) {
	var (
		e    dom.Event
		kind string
		days string
	)
	err := row.Scan(&e.ID, &e.Name, &e.Date, &kind, &days, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return dom.Event{}, err
	}
	e.Recurrence = dom.Recurrence{Kind: dom.RecurrenceKind(kind), Days: splitDays(days)}
	return e, nil
}

// Weekday sets are stored as a comma-joined code list ("MO,WE,FR").
func joinDays(days []dom.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func splitDays(s string) []dom.Weekday {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	days := make([]dom.Weekday, 0, len(parts))
	for _, p := range parts {
		if dom.IsValidWeekday(p) {
			days = append(days, dom.Weekday(p))
		}
	}
	return days
}
