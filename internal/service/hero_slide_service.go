package service

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// HeroSlideService はヒーロースライドのビジネスロジック
type HeroSlideService interface {
	List(ctx context.Context, activeOnly bool) ([]*model.HeroSlide, error)
	Get(ctx context.Context, id string) (*model.HeroSlide, error)
	Create(ctx context.Context, in model.HeroSlidePatch) (*model.HeroSlide, error)
	Update(ctx context.Context, id string, patch model.HeroSlidePatch) (*model.HeroSlide, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// HeroSlideServiceImpl は HeroSlideService の実装
type HeroSlideServiceImpl struct {
	repo repository.HeroSlideRepository
}

// NewHeroSlideService は HeroSlideServiceImpl を生成する
func NewHeroSlideService(repo repository.HeroSlideRepository) HeroSlideService {
	return &HeroSlideServiceImpl{repo: repo}
}

func (s *HeroSlideServiceImpl) List(ctx context.Context, activeOnly bool) ([]*model.HeroSlide, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *HeroSlideServiceImpl) Get(ctx context.Context, id string) (*model.HeroSlide, error) {
	return s.repo.GetByID(ctx, id)
}

// Create は新規スライドを作成する。isActive 省略時は公開、order 省略時は末尾
func (s *HeroSlideServiceImpl) Create(ctx context.Context, in model.HeroSlidePatch) (*model.HeroSlide, error) {
	if err := normalizeHeroSlidePatch(&in); err != nil {
		return nil, err
	}
	slide := &model.HeroSlide{IsActive: true}
	in.Apply(slide)
	if slide.Title == "" {
		return nil, invalid("title_required")
	}
	if slide.Image == "" {
		return nil, invalid("image_required")
	}
	if err := s.repo.Create(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

// Update は指定されたフィールドだけを検証して書き換える。
// order が指定されたときだけ表示順を動かす
func (s *HeroSlideServiceImpl) Update(ctx context.Context, id string, patch model.HeroSlidePatch) (*model.HeroSlide, error) {
	if err := normalizeHeroSlidePatch(&patch); err != nil {
		return nil, err
	}
	slide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(slide)
	if err := s.repo.Update(ctx, slide, patch.Order != nil); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *HeroSlideServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *HeroSlideServiceImpl) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return invalid("ids_required")
	}
	return s.repo.Reorder(ctx, ids)
}

func normalizeHeroSlidePatch(p *model.HeroSlidePatch) error {
	p.Title = trimmed(p.Title)
	p.Image = trimmed(p.Image)
	if p.Title != nil && *p.Title == "" {
		return invalid("title_required")
	}
	if p.Image != nil && *p.Image == "" {
		return invalid("image_required")
	}
	return nil
}
