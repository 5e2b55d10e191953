package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/targetgroup/backend/internal/metrics"
	"github.com/targetgroup/backend/internal/storage"
)

func multipartUpload(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newTestUploadHandler(t *testing.T) (*UploadHandler, string, *metrics.Metrics) {
	t.Helper()
	dir := t.TempDir()
	m := metrics.New()
	h := NewUploadHandler(storage.NewLocalStorage(dir, "/uploads"), m)
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return h, dir, m
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no stored files, found %d", len(entries))
	}
}

func TestUploadHandler_AcceptsImage(t *testing.T) {
	h, dir, m := newTestUploadHandler(t)
	data := bytes.Repeat([]byte{0xAB}, 4*1024*1024)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "file", "hero shot.jpg", "image/jpeg", data))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp uploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.FileName != "hero_shot-1700000000000.jpg" {
		t.Errorf("unexpected file name %q", resp.FileName)
	}
	if resp.URL != "/uploads/hero_shot-1700000000000.jpg" {
		t.Errorf("unexpected url %q", resp.URL)
	}

	stored, err := os.ReadFile(filepath.Join(dir, resp.FileName))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if !bytes.Equal(stored, data) {
		t.Error("stored bytes differ from the upload")
	}
	if got := testutil.ToFloat64(m.Uploads.WithLabelValues("ok")); got != 1 {
		t.Errorf("expected uploads_total{result=ok}=1, got %v", got)
	}
}

func TestUploadHandler_RejectsNonImage(t *testing.T) {
	h, dir, m := newTestUploadHandler(t)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "file", "doc.pdf", "application/pdf", []byte("%PDF-1.4")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "invalid_file_type" {
		t.Errorf("expected invalid_file_type, got %q", resp["error"])
	}
	assertDirEmpty(t, dir)
	if got := testutil.ToFloat64(m.Uploads.WithLabelValues("rejected")); got != 1 {
		t.Errorf("expected uploads_total{result=rejected}=1, got %v", got)
	}
}

func TestUploadHandler_RejectsOversized(t *testing.T) {
	h, dir, _ := newTestUploadHandler(t)
	data := bytes.Repeat([]byte{0x01}, 6*1024*1024)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "file", "big.png", "image/png", data))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "file_too_large" {
		t.Errorf("expected file_too_large, got %q", resp["error"])
	}
	assertDirEmpty(t, dir)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	h, dir, _ := newTestUploadHandler(t)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "image", "a.png", "image/png", []byte("png")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "file_required" {
		t.Errorf("expected file_required, got %q", resp["error"])
	}
	assertDirEmpty(t, dir)
}

type failingStorage struct{}

func (failingStorage) Save(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
	return "", errors.New("disk full")
}

func (failingStorage) Delete(_ context.Context, _ string) error { return errors.New("disk full") }

func TestUploadHandler_StorageFailure(t *testing.T) {
	h := NewUploadHandler(failingStorage{}, nil)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "file", "a.gif", "image/gif", []byte("GIF89a")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func deleteUploadRequest(name string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/"+url.PathEscape(name), nil)
	req.SetPathValue("fileName", name)
	return req
}

func TestUploadHandler_DeleteRemovesFile(t *testing.T) {
	h, dir, m := newTestUploadHandler(t)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "file", "old.png", "image/png", []byte("png")))
	if rec.Code != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Delete(rec, deleteUploadRequest("old-1700000000000.png"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	assertDirEmpty(t, dir)
	if got := testutil.ToFloat64(m.Uploads.WithLabelValues("deleted")); got != 1 {
		t.Errorf("expected uploads_total{result=deleted}=1, got %v", got)
	}

	// 既に無いファイルの削除も成功扱い
	rec = httptest.NewRecorder()
	h.Delete(rec, deleteUploadRequest("old-1700000000000.png"))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for a missing file, got %d", rec.Code)
	}
}

func TestUploadHandler_DeleteRejectsUnsafeName(t *testing.T) {
	h, _, _ := newTestUploadHandler(t)
	for _, name := range []string{"", "..", ".env", "a b.png", "x%2Fy.png"} {
		rec := httptest.NewRecorder()
		h.Delete(rec, deleteUploadRequest(name))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestUploadHandler_DeleteStorageFailure(t *testing.T) {
	h := NewUploadHandler(failingStorage{}, nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, deleteUploadRequest("a-1.png"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestUploadFileName(t *testing.T) {
	at := time.UnixMilli(1712345678901)
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo-1712345678901.jpg"},
		{"my photo (1).PNG", "my_photo__1_-1712345678901.PNG"},
		{"../../etc/passwd.webp", "passwd-1712345678901.webp"},
		{"noext", "noext-1712345678901"},
	}
	for _, tt := range tests {
		if got := UploadFileName(tt.in, at); got != tt.want {
			t.Errorf("UploadFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
