package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/internal/service"
)

// maxJSONBody caps admin and contact request bodies.
const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// decodeJSON reads the request body into v. An empty body is not an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}

// writeServiceError はサービス層・リポジトリ層のエラーを HTTP ステータスとエラーコードに変換する
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if code := service.ValidationCode(err); code != "" {
		writeError(w, http.StatusBadRequest, code)
		return
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusBadRequest, "slug_taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
	default:
		logFailure(r, err, op)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

func logFailure(r *http.Request, err error, op string) {
	slog.ErrorContext(r.Context(), op+" failed",
		"error", err,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
	)
}

var successResponse = map[string]bool{"success": true}

// reorderRequest は並び替え API の共通リクエストボディ
type reorderRequest struct {
	IDs []string `json:"ids"`
}
