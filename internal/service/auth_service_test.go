package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/pkg/password"
)

// ---------------------------------------------------------------------------
// mockUserRepository
// ---------------------------------------------------------------------------

type mockUserRepository struct {
	findByIDFunc       func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (*model.User, error)
	createFunc         func(ctx context.Context, u *model.User) error
	updatePasswordFunc func(ctx context.Context, id, hash string) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, u *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	u.ID = "new-user"
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func userWithPassword(t *testing.T, plain string) *model.User {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}
	return &model.User{ID: "u1", Email: "admin@targetgroup.com", Name: "Admin", PasswordHash: hash}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	u := userWithPassword(t, "admin123")
	var lookedUp string
	repo := &mockUserRepository{
		findByEmailFunc: func(_ context.Context, email string) (*model.User, error) {
			lookedUp = email
			return u, nil
		},
		updatePasswordFunc: func(context.Context, string, string) error {
			t.Error("current argon2 hash must not be rehashed")
			return nil
		},
	}
	svc := NewAuthService(repo)

	got, err := svc.Login(context.Background(), "  Admin@TargetGroup.com ", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("unexpected user %+v", got)
	}
	if lookedUp != "admin@targetgroup.com" {
		t.Errorf("email should be normalized, got %q", lookedUp)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	u := userWithPassword(t, "admin123")
	svc := NewAuthService(&mockUserRepository{
		findByEmailFunc: func(context.Context, string) (*model.User, error) { return u, nil },
	})
	if _, err := svc.Login(context.Background(), u.Email, "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{})
	if _, err := svc.Login(context.Background(), "ghost@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("blank credentials: got %v", err)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{
		findByEmailFunc: func(context.Context, string) (*model.User, error) { return nil, errors.New("db down") },
	})
	_, err := svc.Login(context.Background(), "a@b.co", "x")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected infrastructure error, got %v", err)
	}
}

func TestAuthService_Login_RehashesBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	var newHash string
	svc := NewAuthService(&mockUserRepository{
		findByEmailFunc: func(context.Context, string) (*model.User, error) {
			return &model.User{ID: "u1", Email: "admin@targetgroup.com", PasswordHash: string(legacy)}, nil
		},
		updatePasswordFunc: func(_ context.Context, id, hash string) error {
			newHash = hash
			return nil
		},
	})

	if _, err := svc.Login(context.Background(), "admin@targetgroup.com", "admin123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(newHash, "$argon2id$") {
		t.Errorf("expected argon2id rehash, got %q", newHash)
	}
	if err := password.Verify(newHash, "admin123"); err != nil {
		t.Errorf("rehashed password does not verify: %v", err)
	}
}

// ---------------------------------------------------------------------------
// CreateUser
// ---------------------------------------------------------------------------

func TestAuthService_CreateUser(t *testing.T) {
	var created *model.User
	svc := NewAuthService(&mockUserRepository{
		createFunc: func(_ context.Context, u *model.User) error {
			created = u
			u.ID = "u9"
			return nil
		},
	})

	u, err := svc.CreateUser(context.Background(), "Owner@TargetGroup.com", "Owner", "s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "owner@targetgroup.com" || created == nil {
		t.Errorf("unexpected user %+v", u)
	}
	if err := password.Verify(created.PasswordHash, "s3cret-pass"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	if _, err := svc.CreateUser(context.Background(), "owner@targetgroup.com", "x", "short"); ValidationCode(err) != "password_too_short" {
		t.Errorf("expected password_too_short, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "not-an-email", "x", "long-enough"); ValidationCode(err) != "invalid_email" {
		t.Errorf("expected invalid_email, got %v", err)
	}
}
