package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/targetgroup/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, first_name, last_name, email, COALESCE(phone, ''), subject, message, status,
	COALESCE(notes, ''), created_at, updated_at`

func scanContact(row pgx.Row) (*model.ContactMessage, error) {
	var m model.ContactMessage
	var status string
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Subject, &m.Message, &status,
		&m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Status = model.MessageStatus(status)
	return &m, nil
}

// Save inserts a new contact_messages row and populates msg.ID and timestamps
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (first_name, last_name, email, phone, subject, message, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		msg.FirstName, msg.LastName, msg.Email, msg.Phone, msg.Subject, msg.Message, string(msg.Status),
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	m, err := scanContact(r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

// List returns contact messages filtered by status and paginated by limit/offset.
// Status "" or "all" returns all messages.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && !strings.EqualFold(status, "all") {
		args = append(args, strings.ToUpper(status))
		conditions = append(conditions, "status = $1")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT ` + contactColumns + ` FROM contact_messages ` + where +
		` ORDER BY created_at DESC, id
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *PgContactRepository) Update(ctx context.Context, msg *model.ContactMessage) error {
	if !validID(msg.ID) {
		return ErrNotFound
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE contact_messages SET status=$1, notes=NULLIF($2, ''), updated_at=NOW()
		 WHERE id=$3
		 RETURNING updated_at`,
		string(msg.Status), msg.Notes, msg.ID,
	).Scan(&msg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PgContactRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status='READ', updated_at=NOW() WHERE id=$1 AND status='NEW'`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgContactRepository) CountByStatus(ctx context.Context, status model.MessageStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE status = $1`, string(status)).Scan(&n)
	return n, err
}
