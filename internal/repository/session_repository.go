package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/targetgroup/backend/internal/config"
	"github.com/targetgroup/backend/internal/model"
)

// SessionRepository handles persistence for user sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// ExpiredSessionPurger is implemented by stores that do not expire sessions on their own.
type ExpiredSessionPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionStore は起動時に選ばれたセッションバックエンド
type SessionStore struct {
	SessionRepository
	// Backend is "postgres" or "redis".
	Backend string
	ping    func(ctx context.Context) error
	close   func()
}

// Ping checks that the backend is reachable.
func (s *SessionStore) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close releases the backend connection, if the store owns one.
func (s *SessionStore) Close() { s.close() }

// NewSessionStore は redis.addr が設定されていれば Redis、なければ PostgreSQL のセッションストアを返す
func NewSessionStore(ctx context.Context, cfg config.RedisConfig, pool *pgxpool.Pool) (*SessionStore, error) {
	if cfg.Addr == "" {
		return &SessionStore{
			SessionRepository: NewPgSessionRepository(pool),
			Backend:           "postgres",
			ping:              pool.Ping,
			close:             func() {},
		}, nil
	}
	client, err := NewRedisClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	slog.Info("sessions stored in redis", "addr", cfg.Addr)
	return &SessionStore{
		SessionRepository: NewRedisSessionRepository(client),
		Backend:           "redis",
		ping:              func(ctx context.Context) error { return client.Ping(ctx).Err() },
		close:             func() { _ = client.Close() },
	}, nil
}
