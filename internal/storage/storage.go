package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/targetgroup/backend/internal/config"
)

// Storage はアップロード画像の保存・削除を抽象化するインターフェース。
// ローカルファイルシステム実装と S3 互換オブジェクトストレージ実装がある。
type Storage interface {
	// Save はファイルを保存し、公開 URL を返す。
	// key はストレージ内の一意パス (例: "cement-1712345678901.jpg")。
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete は key に対応するファイルを削除する。存在しなければ何もしない。
	Delete(ctx context.Context, key string) error
}

// New は設定 uploads.backend に応じた Storage を返す
func New(ctx context.Context, uploads config.UploadsConfig, s3cfg config.S3Config) (Storage, error) {
	switch uploads.Backend {
	case "", "local":
		return NewLocalStorage(uploads.Dir, uploads.URLPrefix), nil
	case "s3":
		return NewS3Storage(ctx, s3cfg)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", uploads.Backend)
	}
}
