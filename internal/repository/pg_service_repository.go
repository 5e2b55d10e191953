package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/targetgroup/backend/internal/model"
)

// PgServiceRepository は ServiceRepository の PostgreSQL 実装
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository は PgServiceRepository を生成する
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

var serviceScope = orderScope{table: "services"}

const serviceColumns = `id, name, slug, description, COALESCE(image, ''), COALESCE(icon, ''),
	sort_order, is_active, created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	var icon string
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Image, &icon,
		&s.Order, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Icon = model.ServiceIcon(icon)
	return &s, nil
}

func (r *PgServiceRepository) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services
		 WHERE ($1 = FALSE OR is_active = TRUE)
		 ORDER BY sort_order, created_at, id`,
		activeOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// GetBySlug はスラッグでサービスを取得する（公開状態は呼び出し側で判定する）
func (r *PgServiceRepository) GetBySlug(ctx context.Context, slug string) (*model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		pos, err := insertPosition(ctx, tx, serviceScope, svc.Order)
		if err != nil {
			return err
		}
		svc.Order = pos
		return tx.QueryRow(ctx,
			`INSERT INTO services (name, slug, description, image, icon, sort_order, is_active)
			 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
			 RETURNING id, created_at, updated_at`,
			svc.Name, svc.Slug, svc.Description, svc.Image, string(svc.Icon), svc.Order, svc.IsActive,
		).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
	})
	return mapWriteError(err)
}

func (r *PgServiceRepository) Update(ctx context.Context, svc *model.Service, reposition bool) error {
	if !validID(svc.ID) {
		return ErrNotFound
	}
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if reposition {
			if _, err := movePosition(ctx, tx, serviceScope, svc.ID, svc.Order); err != nil {
				return err
			}
		}
		err := tx.QueryRow(ctx,
			`UPDATE services SET name=$1, slug=$2, description=$3, image=NULLIF($4, ''), icon=NULLIF($5, ''),
			        is_active=$6, updated_at=NOW()
			 WHERE id=$7
			 RETURNING sort_order, updated_at`,
			svc.Name, svc.Slug, svc.Description, svc.Image, string(svc.Icon), svc.IsActive, svc.ID,
		).Scan(&svc.Order, &svc.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	})
	return mapWriteError(err)
}

// Delete はサービスと配下の品目・メリットを同一トランザクションで削除する。
// スキーマ側の ON DELETE CASCADE に依存せず、子が残らないことを保証する。
func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM service_items WHERE service_id=$1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM service_benefits WHERE service_id=$1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return compactPositions(ctx, tx, serviceScope)
	})
}

func (r *PgServiceRepository) Reorder(ctx context.Context, ids []string) error {
	if !validIDs(ids) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return reorderPositions(ctx, tx, serviceScope, ids)
	})
}

func (r *PgServiceRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE is_active = TRUE`).Scan(&n)
	return n, err
}
