package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/targetgroup/backend/internal/model"
)

// PgTeamMemberRepository は TeamMemberRepository の PostgreSQL 実装
type PgTeamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamMemberRepository は PgTeamMemberRepository を生成する
func NewPgTeamMemberRepository(pool *pgxpool.Pool) *PgTeamMemberRepository {
	return &PgTeamMemberRepository{pool: pool}
}

var _ TeamMemberRepository = (*PgTeamMemberRepository)(nil)

var teamMemberScope = orderScope{table: "team_members"}

const teamMemberColumns = `id, name, role, COALESCE(image, ''), COALESCE(bio, ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(linkedin, ''), sort_order, is_active, created_at, updated_at`

func scanTeamMember(row pgx.Row) (*model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Image, &m.Bio, &m.Email,
		&m.Phone, &m.LinkedIn, &m.Order, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgTeamMemberRepository) List(ctx context.Context, activeOnly bool) ([]*model.TeamMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members
		 WHERE ($1 = FALSE OR is_active = TRUE)
		 ORDER BY sort_order, created_at, id`,
		activeOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PgTeamMemberRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	m, err := scanTeamMember(r.pool.QueryRow(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *PgTeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		pos, err := insertPosition(ctx, tx, teamMemberScope, member.Order)
		if err != nil {
			return err
		}
		member.Order = pos
		return tx.QueryRow(ctx,
			`INSERT INTO team_members (name, role, image, bio, email, phone, linkedin, sort_order, is_active)
			 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)
			 RETURNING id, created_at, updated_at`,
			member.Name, member.Role, member.Image, member.Bio, member.Email, member.Phone, member.LinkedIn,
			member.Order, member.IsActive,
		).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
	})
}

func (r *PgTeamMemberRepository) Update(ctx context.Context, member *model.TeamMember, reposition bool) error {
	if !validID(member.ID) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if reposition {
			if _, err := movePosition(ctx, tx, teamMemberScope, member.ID, member.Order); err != nil {
				return err
			}
		}
		err := tx.QueryRow(ctx,
			`UPDATE team_members SET name=$1, role=$2, image=NULLIF($3, ''), bio=NULLIF($4, ''), email=NULLIF($5, ''),
			        phone=NULLIF($6, ''), linkedin=NULLIF($7, ''), is_active=$8, updated_at=NOW()
			 WHERE id=$9
			 RETURNING sort_order, updated_at`,
			member.Name, member.Role, member.Image, member.Bio, member.Email, member.Phone, member.LinkedIn,
			member.IsActive, member.ID,
		).Scan(&member.Order, &member.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	})
}

func (r *PgTeamMemberRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return compactPositions(ctx, tx, teamMemberScope)
	})
}

func (r *PgTeamMemberRepository) Reorder(ctx context.Context, ids []string) error {
	if !validIDs(ids) {
		return ErrNotFound
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return reorderPositions(ctx, tx, teamMemberScope, ids)
	})
}

func (r *PgTeamMemberRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members WHERE is_active = TRUE`).Scan(&n)
	return n, err
}
