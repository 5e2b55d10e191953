package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/pkg/password"
)

const minPasswordLength = 8

// AuthServiceImpl は AuthService の実装
type AuthServiceImpl struct {
	userRepo repository.UserRepository
}

// NewAuthService は AuthServiceImpl を生成する（DI: UserRepository を注入）
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Login はパスワードを検証し、古い形式のハッシュなら argon2id で保存し直す
func (s *AuthServiceImpl) Login(ctx context.Context, email, plain string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plain == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Debug("login: unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if password.NeedsRehash(u.PasswordHash) {
		if hash, err := password.Hash(plain); err == nil {
			if err := s.userRepo.UpdatePassword(ctx, u.ID, hash); err != nil {
				slog.Warn("rehash password failed", "user_id", u.ID, "error", err)
			} else {
				u.PasswordHash = hash
				slog.Info("password rehashed", "user_id", u.ID)
			}
		}
	}
	slog.Info("admin logged in", "user_id", u.ID)
	return u, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *AuthServiceImpl) CreateUser(ctx context.Context, email, name, plain string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, invalid("invalid_email")
	}
	if len(plain) < minPasswordLength {
		return nil, invalid("password_too_short")
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	slog.Info("admin user created", "user_id", u.ID)
	return u, nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, id, plain string) error {
	if len(plain) < minPasswordLength {
		return invalid("password_too_short")
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, hash)
}
