package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/pkg/auth"
)

var (
	// ErrInvalidSession is returned for unknown tokens.
	ErrInvalidSession = errors.New("invalid_session")
	// ErrSessionExpired is returned for tokens past their expiry; the record is removed.
	ErrSessionExpired = errors.New("session_expired")
)

// SessionService manages server-side admin sessions.
// Implements auth.SessionValidator.
type SessionService struct {
	repo repository.SessionRepository
	ttl  time.Duration
	now  func() time.Time
}

var _ auth.SessionValidator = (*SessionService)(nil)

// NewSessionService creates a SessionService whose sessions live for ttl.
func NewSessionService(repo repository.SessionRepository, ttl time.Duration) *SessionService {
	return &SessionService{repo: repo, ttl: ttl, now: time.Now}
}

// TTL returns the lifetime given to new sessions.
func (s *SessionService) TTL() time.Duration { return s.ttl }

// CreateSession generates a new opaque token, stores it, and returns the session.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	session := &model.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		slog.Error("create session failed", "user_id", userID, "error", err)
		return nil, err
	}
	slog.Debug("session created", "user_id", userID, "expires_at", session.ExpiresAt)
	return session, nil
}

// ValidateSession validates a session token and returns the user ID.
// Implements auth.SessionValidator.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}
	if session.Expired(s.now()) {
		if err := s.repo.DeleteByToken(ctx, token); err != nil {
			slog.Warn("delete expired session failed", "error", err)
		}
		return "", ErrSessionExpired
	}
	return session.UserID, nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}

// DeleteAllSessions removes all sessions for a user (forced logout).
func (s *SessionService) DeleteAllSessions(ctx context.Context, userID string) error {
	return s.repo.DeleteByUserID(ctx, userID)
}

// PurgeExpired deletes expired sessions when the store needs it. Redis expires keys itself.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	purger, ok := s.repo.(repository.ExpiredSessionPurger)
	if !ok {
		return 0, nil
	}
	return purger.DeleteExpired(ctx)
}

// RunPurger calls PurgeExpired every interval until ctx is done.
func (s *SessionService) RunPurger(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				slog.Warn("purge expired sessions failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions purged", "count", n)
			}
		}
	}
}
