package repo

import (
	"context"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepo interface {
	Create(ctx context.Context, it dom.Item) (dom.Item, error)
	GetByID(ctx context.Context, id int64) (dom.Item, error)
	GetAll(ctx context.Context) ([]dom.Item, error)
	ListByEvent(ctx context.Context, eventID int64) ([]dom.Item, error)
	Update(ctx context.Context, it dom.Item) (dom.Item, error)
	Delete(ctx context.Context, id int64) error
	DeleteByEvent(ctx context.Context, eventID int64) error
}

type PGItemRepo struct {
	db *pgxpool.Pool
}

func NewPGItemRepo(db *pgxpool.Pool) *PGItemRepo {
	return &PGItemRepo{db: db}
}

const itemColumns = `id, event_id, name, checked, created_at, updated_at`

func (r *PGItemRepo) Create(ctx context.Context, it dom.Item) (dom.Item, error) {
	query := `
		INSERT INTO items (event_id, name, checked)
		VALUES ($1, $2, $3)
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query, it.EventID, it.Name, it.Checked))
}

func (r *PGItemRepo) GetByID(ctx context.Context, id int64) (dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItem(r.db.QueryRow(ctx, query, id))
}

func (r *PGItemRepo) GetAll(ctx context.Context) ([]dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id ASC`
	return r.queryItems(ctx, query)
}

func (r *PGItemRepo) ListByEvent(ctx context.Context, eventID int64) ([]dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE event_id = $1 ORDER BY id ASC`
	return r.queryItems(ctx, query, eventID)
}

func (r *PGItemRepo) Update(ctx context.Context, it dom.Item) (dom.Item, error) {
	query := `
		UPDATE items SET name = $2, checked = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query, it.ID, it.Name, it.Checked))
}

func (r *PGItemRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByEvent removes every item referencing eventID. Zero matches is
// not an error; the cascade caller may run after the last item is gone.
func (r *PGItemRepo) DeleteByEvent(ctx context.Context, eventID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM items WHERE event_id = $1`, eventID)
	return err
}

func (r *PGItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]dom.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (dom.Item, error) {
	var it dom.Item
	err := row.Scan(&it.ID, &it.EventID, &it.Name, &it.Checked, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}
