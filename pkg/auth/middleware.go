package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

type contextKey string

const (
	userIDKey       contextKey = "user_id"
	sessionTokenKey contextKey = "session_token"
)

// SessionValidator はトークンからユーザー ID を解決する（service.SessionService が実装）
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// UserIDFromContext は context から userID を取得する
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok && v != ""
}

// WithUserID は context に userID をセットする
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// SessionTokenFromContext は検証済みのセッショントークンを返す（ログアウト用）
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionTokenKey).(string)
	return v, ok && v != ""
}

func withSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

// TokenFromRequest はクッキーまたは Authorization: Bearer から署名済みトークンを取り出し検証する
func TokenFromRequest(r *http.Request, secret []byte) (string, bool) {
	var signed string
	if c, err := r.Cookie(SessionCookieName()); err == nil {
		signed = c.Value
	} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		signed = strings.TrimPrefix(h, "Bearer ")
	}
	if signed == "" {
		return "", false
	}
	token, err := VerifySignedToken(signed, secret)
	if err != nil {
		return "", false
	}
	return token, true
}

// authenticate resolves the request's session. ok is false when there is none or it is invalid.
func authenticate(r *http.Request, v SessionValidator, secret []byte) (context.Context, bool) {
	token, ok := TokenFromRequest(r, secret)
	if !ok {
		return nil, false
	}
	userID, err := v.ValidateSession(r.Context(), token)
	if err != nil || userID == "" {
		return nil, false
	}
	ctx := WithUserID(r.Context(), userID)
	return withSessionToken(ctx, token), true
}

// RequireSession は認証必須ミドルウェア。セッションを検証し、userID を context にセットする。
// 失敗時は 401 を返し、後続のハンドラは呼ばない
func RequireSession(v SessionValidator, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(r, v, secret)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePageSession は管理画面の HTML ページ用。未ログインならログイン画面へリダイレクトする
func RequirePageSession(v SessionValidator, secret []byte, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(r, v, secret)
			if !ok {
				target := loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession はセッションがあれば context にセットし、なくても後続を呼ぶ
func OptionalSession(v SessionValidator, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctx, ok := authenticate(r, v, secret); ok {
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
