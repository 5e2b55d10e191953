package service

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
)

// AuthService は管理者ログインに関するビジネスロジックのインターフェース
type AuthService interface {
	// Login はメールアドレスとパスワードを検証する。失敗時は ErrInvalidCredentials
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	// CreateUser は管理者アカウントを作成する（CLI の create-admin / seed 用）
	CreateUser(ctx context.Context, email, name, password string) (*model.User, error)
	ChangePassword(ctx context.Context, id, password string) error
}
