package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/internal/service"
	"github.com/targetgroup/backend/pkg/auth"
)

// SessionManager はログイン・ログアウト時のセッション操作（service.SessionService が実装）
type SessionManager interface {
	CreateSession(ctx context.Context, userID string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// AuthHandler は管理者ログインの HTTP ハンドラ
type AuthHandler struct {
	authService   service.AuthService
	sessions      SessionManager
	sessionSecret []byte
	cookieSecure  bool
}

// AuthConfig は AuthHandler の設定
type AuthConfig struct {
	SessionSecret string
	CookieSecure  bool
}

// NewAuthHandler は AuthHandler を生成する（DI: AuthService, SessionManager を注入）
func NewAuthHandler(authService service.AuthService, sessions SessionManager, cfg AuthConfig) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		sessionSecret: auth.SessionSecretBytes(cfg.SessionSecret),
		cookieSecure:  cfg.CookieSecure,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *model.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing_required_fields")
		return
	}

	user, err := h.StartSession(w, r, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}

// StartSession は資格情報を検証し、セッションを作成してクッキーを書き込む。
// HTML のログインフォームからも使う
func (h *AuthHandler) StartSession(w http.ResponseWriter, r *http.Request, email, password string) (*model.User, error) {
	user, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		return nil, err
	}
	sess, err := h.sessions.CreateSession(r.Context(), user.ID)
	if err != nil {
		return nil, err
	}
	auth.SetSessionCookie(w, auth.SignToken(sess.Token, h.sessionSecret), sess.ExpiresAt, h.cookieSecure)
	return user, nil
}

// EndSession はリクエストのセッションを削除し、クッキーを消す。セッションがなくてもエラーにしない
func (h *AuthHandler) EndSession(w http.ResponseWriter, r *http.Request) error {
	var err error
	if token, ok := auth.TokenFromRequest(r, h.sessionSecret); ok {
		if err = h.sessions.DeleteSession(r.Context(), token); errors.Is(err, repository.ErrNotFound) {
			err = nil
		}
	}
	auth.ClearSessionCookie(w, h.cookieSecure)
	return err
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.EndSession(w, r); err != nil {
		logFailure(r, err, "logout")
	}
	writeJSON(w, http.StatusOK, successResponse)
}

// Me handles GET /api/auth/me (auth required).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "me")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}
