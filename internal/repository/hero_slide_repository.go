package repository

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
)

// HeroSlideRepository はヒーロースライドの永続化インターフェース
type HeroSlideRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.HeroSlide, error)
	GetByID(ctx context.Context, id string) (*model.HeroSlide, error)
	// Create は slide.Order の位置に挿入する（0 なら末尾）。確定した Order を slide に書き戻す
	Create(ctx context.Context, slide *model.HeroSlide) error
	// Update は全フィールドを書き込む。reposition が true のときだけ slide.Order へ移動し、
	// 他の行をずらす。false なら保存済みの Order を slide に書き戻す
	Update(ctx context.Context, slide *model.HeroSlide, reposition bool) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	CountActive(ctx context.Context) (int, error)
}
