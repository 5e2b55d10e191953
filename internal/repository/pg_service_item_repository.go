package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/targetgroup/backend/internal/model"
)

// PgServiceItemRepository は ServiceItemRepository の PostgreSQL 実装
type PgServiceItemRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceItemRepository は PgServiceItemRepository を生成する
func NewPgServiceItemRepository(pool *pgxpool.Pool) *PgServiceItemRepository {
	return &PgServiceItemRepository{pool: pool}
}

var _ ServiceItemRepository = (*PgServiceItemRepository)(nil)

func itemScope(serviceID string) orderScope {
	return orderScope{table: "service_items", parentCol: "service_id", parentID: serviceID}
}

const serviceItemColumns = `id, service_id, name, COALESCE(description, ''), COALESCE(image, ''),
	sort_order, is_active, created_at, updated_at`

func scanServiceItem(row pgx.Row) (*model.ServiceItem, error) {
	var it model.ServiceItem
	err := row.Scan(&it.ID, &it.ServiceID, &it.Name, &it.Description, &it.Image,
		&it.Order, &it.IsActive, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PgServiceItemRepository) ListByService(ctx context.Context, serviceID string, activeOnly bool) ([]*model.ServiceItem, error) {
	if !validID(serviceID) {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceItemColumns+` FROM service_items
		 WHERE service_id = $1 AND ($2 = FALSE OR is_active = TRUE)
		 ORDER BY sort_order, created_at, id`,
		serviceID, activeOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.ServiceItem
	for rows.Next() {
		it, err := scanServiceItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PgServiceItemRepository) GetByID(ctx context.Context, id string) (*model.ServiceItem, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	it, err := scanServiceItem(r.pool.QueryRow(ctx,
		`SELECT `+serviceItemColumns+` FROM service_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

func (r *PgServiceItemRepository) Create(ctx context.Context, item *model.ServiceItem) error {
	if !validID(item.ServiceID) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		pos, err := insertPosition(ctx, tx, itemScope(item.ServiceID), item.Order)
		if err != nil {
			return err
		}
		item.Order = pos
		return tx.QueryRow(ctx,
			`INSERT INTO service_items (service_id, name, description, image, sort_order, is_active)
			 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
			 RETURNING id, created_at, updated_at`,
			item.ServiceID, item.Name, item.Description, item.Image, item.Order, item.IsActive,
		).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	})
}

func (r *PgServiceItemRepository) Update(ctx context.Context, item *model.ServiceItem, reposition bool) error {
	if !validID(item.ID) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if reposition {
			if _, err := movePosition(ctx, tx, itemScope(item.ServiceID), item.ID, item.Order); err != nil {
				return err
			}
		}
		err := tx.QueryRow(ctx,
			`UPDATE service_items SET name=$1, description=NULLIF($2, ''), image=NULLIF($3, ''), is_active=$4, updated_at=NOW()
			 WHERE id=$5
			 RETURNING sort_order, updated_at`,
			item.Name, item.Description, item.Image, item.IsActive, item.ID,
		).Scan(&item.Order, &item.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	})
}

func (r *PgServiceItemRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var serviceID string
		err := tx.QueryRow(ctx, `DELETE FROM service_items WHERE id=$1 RETURNING service_id`, id).Scan(&serviceID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return compactPositions(ctx, tx, itemScope(serviceID))
	})
}

func (r *PgServiceItemRepository) Reorder(ctx context.Context, serviceID string, ids []string) error {
	if !validID(serviceID) || !validIDs(ids) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return reorderPositions(ctx, tx, itemScope(serviceID), ids)
	})
}
