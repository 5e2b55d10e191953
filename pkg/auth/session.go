package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"
)

const sessionCookieName = "tg_session"
const minSecretLen = 32

// ErrInvalidToken はクッキー値の形式または署名が不正な場合に返す
var ErrInvalidToken = errors.New("invalid session token")

// GenerateSessionToken はサーバー側セッションのキーとなるランダムなトークンを生成する
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SignToken はトークンに HMAC 署名を付けたクッキー値を返す
func SignToken(token string, secret []byte) string {
	return token + "." + signature(token, secret)
}

// VerifySignedToken は署名を検証し、元のトークンを返す
func VerifySignedToken(value string, secret []byte) (string, error) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" || sig == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(signature(token, secret)), []byte(sig)) {
		return "", ErrInvalidToken
	}
	return token, nil
}

func signature(token string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// SessionCookieName はセッションクッキー名
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes は文字列からセッション署名用のバイト列を生成する（最低32バイト）
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// SetSessionCookie は署名済みトークンをクッキーに書き込む
func SetSessionCookie(w http.ResponseWriter, signed string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie はセッションクッキーを削除する
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
