package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/targetgroup/backend/internal/metrics"
	"github.com/targetgroup/backend/internal/storage"
)

// MaxUploadSize is the largest accepted image (5 MiB).
const MaxUploadSize = 5 * 1024 * 1024

// multipart のヘッダ・境界文字列ぶんの余裕
const uploadEnvelope = 64 * 1024

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// UploadHandler は管理画面からの画像アップロードを処理する
type UploadHandler struct {
	storage storage.Storage
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewUploadHandler は UploadHandler を生成する。m は nil でもよい
func NewUploadHandler(store storage.Storage, m *metrics.Metrics) *UploadHandler {
	return &UploadHandler{storage: store, metrics: m, now: time.Now}
}

type uploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// Upload handles POST /api/upload (multipart field "file").
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const limit = MaxUploadSize + uploadEnvelope
	if r.ContentLength > limit {
		h.reject(w, "file_too_large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.reject(w, "file_too_large")
			return
		}
		h.reject(w, "file_required")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.reject(w, "file_required")
		return
	}
	defer file.Close()

	ct := header.Header.Get("Content-Type")
	if !allowedUploadTypes[ct] {
		h.reject(w, "invalid_file_type")
		return
	}
	if header.Size > MaxUploadSize {
		h.reject(w, "file_too_large")
		return
	}

	fileName := UploadFileName(header.Filename, h.now())
	url, err := h.storage.Save(r.Context(), fileName, file, ct)
	if err != nil {
		h.count("error")
		logFailure(r, err, "upload")
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	h.count("ok")
	writeJSON(w, http.StatusOK, uploadResponse{URL: url, FileName: fileName})
}

// Delete handles DELETE /api/admin/uploads/{fileName}. Admin pages call it to
// discard an upload that was replaced before the form was saved.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fileName := r.PathValue("fileName")
	if !validUploadName(fileName) {
		writeError(w, http.StatusBadRequest, "invalid_file_name")
		return
	}
	if err := h.storage.Delete(r.Context(), fileName); err != nil {
		logFailure(r, err, "delete upload")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	h.count("deleted")
	writeJSON(w, http.StatusOK, successResponse)
}

// validUploadName accepts only names UploadFileName can produce.
func validUploadName(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !unsafeFileChars.MatchString(name)
}

func (h *UploadHandler) reject(w http.ResponseWriter, code string) {
	h.count("rejected")
	writeError(w, http.StatusBadRequest, code)
}

func (h *UploadHandler) count(result string) {
	if h.metrics != nil {
		h.metrics.Uploads.WithLabelValues(result).Inc()
	}
}

// UploadFileName は元のファイル名を安全な文字だけに置き換え、
// ミリ秒タイムスタンプを付けた "<base>-<unixMillis><ext>" を返す
func UploadFileName(original string, at time.Time) string {
	name := unsafeFileChars.ReplaceAllString(filepath.Base(original), "_")
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "-" + strconv.FormatInt(at.UnixMilli(), 10) + ext
}
