package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/targetgroup/backend/internal/model"
)

// PgHeroSlideRepository は HeroSlideRepository の PostgreSQL 実装
type PgHeroSlideRepository struct {
	pool *pgxpool.Pool
}

// NewPgHeroSlideRepository は PgHeroSlideRepository を生成する
func NewPgHeroSlideRepository(pool *pgxpool.Pool) *PgHeroSlideRepository {
	return &PgHeroSlideRepository{pool: pool}
}

var _ HeroSlideRepository = (*PgHeroSlideRepository)(nil)

var heroSlideScope = orderScope{table: "hero_slides"}

const heroSlideColumns = `id, title, COALESCE(subtitle, ''), image, COALESCE(button_text, ''), COALESCE(button_link, ''),
	sort_order, is_active, created_at, updated_at`

func scanHeroSlide(row pgx.Row) (*model.HeroSlide, error) {
	var s model.HeroSlide
	err := row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Image, &s.ButtonText, &s.ButtonLink,
		&s.Order, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List はスライド一覧を表示順で返す。activeOnly なら公開中のものだけ
func (r *PgHeroSlideRepository) List(ctx context.Context, activeOnly bool) ([]*model.HeroSlide, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+heroSlideColumns+` FROM hero_slides
		 WHERE ($1 = FALSE OR is_active = TRUE)
		 ORDER BY sort_order, created_at, id`,
		activeOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []*model.HeroSlide
	for rows.Next() {
		s, err := scanHeroSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

// GetByID は ID でスライドを取得する
func (r *PgHeroSlideRepository) GetByID(ctx context.Context, id string) (*model.HeroSlide, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	s, err := scanHeroSlide(r.pool.QueryRow(ctx,
		`SELECT `+heroSlideColumns+` FROM hero_slides WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// Create はスライドを作成する
func (r *PgHeroSlideRepository) Create(ctx context.Context, slide *model.HeroSlide) error {
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		pos, err := insertPosition(ctx, tx, heroSlideScope, slide.Order)
		if err != nil {
			return err
		}
		slide.Order = pos
		return tx.QueryRow(ctx,
			`INSERT INTO hero_slides (title, subtitle, image, button_text, button_link, sort_order, is_active)
			 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
			 RETURNING id, created_at, updated_at`,
			slide.Title, slide.Subtitle, slide.Image, slide.ButtonText, slide.ButtonLink, slide.Order, slide.IsActive,
		).Scan(&slide.ID, &slide.CreatedAt, &slide.UpdatedAt)
	})
}

// Update はスライドを更新する
func (r *PgHeroSlideRepository) Update(ctx context.Context, slide *model.HeroSlide, reposition bool) error {
	if !validID(slide.ID) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if reposition {
			if _, err := movePosition(ctx, tx, heroSlideScope, slide.ID, slide.Order); err != nil {
				return err
			}
		}
		err := tx.QueryRow(ctx,
			`UPDATE hero_slides SET title=$1, subtitle=NULLIF($2, ''), image=$3, button_text=NULLIF($4, ''),
			        button_link=NULLIF($5, ''), is_active=$6, updated_at=NOW()
			 WHERE id=$7
			 RETURNING sort_order, updated_at`,
			slide.Title, slide.Subtitle, slide.Image, slide.ButtonText, slide.ButtonLink, slide.IsActive, slide.ID,
		).Scan(&slide.Order, &slide.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	})
}

// Delete はスライドを削除し、残りの表示順を詰める
func (r *PgHeroSlideRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM hero_slides WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return compactPositions(ctx, tx, heroSlideScope)
	})
}

// Reorder は ids の順序で sort_order を 1 から振り直す
func (r *PgHeroSlideRepository) Reorder(ctx context.Context, ids []string) error {
	if !validIDs(ids) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return reorderPositions(ctx, tx, heroSlideScope, ids)
	})
}

// CountActive は公開中のスライド数を返す
func (r *PgHeroSlideRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hero_slides WHERE is_active = TRUE`).Scan(&n)
	return n, err
}
