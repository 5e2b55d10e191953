package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/targetgroup/backend/internal/model"
)

// PgServiceBenefitRepository は ServiceBenefitRepository の PostgreSQL 実装
type PgServiceBenefitRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceBenefitRepository は PgServiceBenefitRepository を生成する
func NewPgServiceBenefitRepository(pool *pgxpool.Pool) *PgServiceBenefitRepository {
	return &PgServiceBenefitRepository{pool: pool}
}

var _ ServiceBenefitRepository = (*PgServiceBenefitRepository)(nil)

func benefitScope(serviceID string) orderScope {
	return orderScope{table: "service_benefits", parentCol: "service_id", parentID: serviceID}
}

const serviceBenefitColumns = `id, service_id, text, sort_order, is_active, created_at, updated_at`

func scanServiceBenefit(row pgx.Row) (*model.ServiceBenefit, error) {
	var b model.ServiceBenefit
	err := row.Scan(&b.ID, &b.ServiceID, &b.Text, &b.Order, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgServiceBenefitRepository) ListByService(ctx context.Context, serviceID string, activeOnly bool) ([]*model.ServiceBenefit, error) {
	if !validID(serviceID) {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceBenefitColumns+` FROM service_benefits
		 WHERE service_id = $1 AND ($2 = FALSE OR is_active = TRUE)
		 ORDER BY sort_order, created_at, id`,
		serviceID, activeOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var benefits []*model.ServiceBenefit
	for rows.Next() {
		b, err := scanServiceBenefit(rows)
		if err != nil {
			return nil, err
		}
		benefits = append(benefits, b)
	}
	return benefits, rows.Err()
}

func (r *PgServiceBenefitRepository) GetByID(ctx context.Context, id string) (*model.ServiceBenefit, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	b, err := scanServiceBenefit(r.pool.QueryRow(ctx,
		`SELECT `+serviceBenefitColumns+` FROM service_benefits WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *PgServiceBenefitRepository) Create(ctx context.Context, benefit *model.ServiceBenefit) error {
	if !validID(benefit.ServiceID) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		pos, err := insertPosition(ctx, tx, benefitScope(benefit.ServiceID), benefit.Order)
		if err != nil {
			return err
		}
		benefit.Order = pos
		return tx.QueryRow(ctx,
			`INSERT INTO service_benefits (service_id, text, sort_order, is_active)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at, updated_at`,
			benefit.ServiceID, benefit.Text, benefit.Order, benefit.IsActive,
		).Scan(&benefit.ID, &benefit.CreatedAt, &benefit.UpdatedAt)
	})
}

func (r *PgServiceBenefitRepository) Update(ctx context.Context, benefit *model.ServiceBenefit, reposition bool) error {
	if !validID(benefit.ID) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if reposition {
			if _, err := movePosition(ctx, tx, benefitScope(benefit.ServiceID), benefit.ID, benefit.Order); err != nil {
				return err
			}
		}
		err := tx.QueryRow(ctx,
			`UPDATE service_benefits SET text=$1, is_active=$2, updated_at=NOW()
			 WHERE id=$3
			 RETURNING sort_order, updated_at`,
			benefit.Text, benefit.IsActive, benefit.ID,
		).Scan(&benefit.Order, &benefit.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	})
}

func (r *PgServiceBenefitRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var serviceID string
		err := tx.QueryRow(ctx, `DELETE FROM service_benefits WHERE id=$1 RETURNING service_id`, id).Scan(&serviceID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return compactPositions(ctx, tx, benefitScope(serviceID))
	})
}

func (r *PgServiceBenefitRepository) Reorder(ctx context.Context, serviceID string, ids []string) error {
	if !validID(serviceID) || !validIDs(ids) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return reorderPositions(ctx, tx, benefitScope(serviceID), ids)
	})
}
