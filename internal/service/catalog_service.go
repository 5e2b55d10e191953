package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// CatalogService は事業サービスと、その配下の取扱品目・導入メリットを扱う
type CatalogService interface {
	ListServices(ctx context.Context, activeOnly bool) ([]*model.Service, error)
	// GetService returns the service with all of its items and benefits.
	GetService(ctx context.Context, id string) (*model.Service, error)
	// GetPublishedService returns an active service by slug with only active children.
	GetPublishedService(ctx context.Context, slug string) (*model.Service, error)
	CreateService(ctx context.Context, in model.ServicePatch) (*model.Service, error)
	UpdateService(ctx context.Context, id string, patch model.ServicePatch) (*model.Service, error)
	DeleteService(ctx context.Context, id string) error
	ReorderServices(ctx context.Context, ids []string) error

	ListItems(ctx context.Context, serviceID string) ([]*model.ServiceItem, error)
	GetItem(ctx context.Context, serviceID, itemID string) (*model.ServiceItem, error)
	CreateItem(ctx context.Context, serviceID string, in model.ServiceItemPatch) (*model.ServiceItem, error)
	UpdateItem(ctx context.Context, serviceID, itemID string, patch model.ServiceItemPatch) (*model.ServiceItem, error)
	DeleteItem(ctx context.Context, serviceID, itemID string) error
	ReorderItems(ctx context.Context, serviceID string, ids []string) error

	ListBenefits(ctx context.Context, serviceID string) ([]*model.ServiceBenefit, error)
	GetBenefit(ctx context.Context, serviceID, benefitID string) (*model.ServiceBenefit, error)
	CreateBenefit(ctx context.Context, serviceID string, in model.ServiceBenefitPatch) (*model.ServiceBenefit, error)
	UpdateBenefit(ctx context.Context, serviceID, benefitID string, patch model.ServiceBenefitPatch) (*model.ServiceBenefit, error)
	DeleteBenefit(ctx context.Context, serviceID, benefitID string) error
	ReorderBenefits(ctx context.Context, serviceID string, ids []string) error
}

// CatalogServiceImpl は CatalogService の実装
type CatalogServiceImpl struct {
	services repository.ServiceRepository
	items    repository.ServiceItemRepository
	benefits repository.ServiceBenefitRepository
}

// NewCatalogService は CatalogServiceImpl を生成する
func NewCatalogService(
	services repository.ServiceRepository,
	items repository.ServiceItemRepository,
	benefits repository.ServiceBenefitRepository,
) CatalogService {
	return &CatalogServiceImpl{services: services, items: items, benefits: benefits}
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

func (s *CatalogServiceImpl) ListServices(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	return s.services.List(ctx, activeOnly)
}

func (s *CatalogServiceImpl) GetService(ctx context.Context, id string) (*model.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadChildren(ctx, svc, false); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogServiceImpl) GetPublishedService(ctx context.Context, slug string) (*model.Service, error) {
	svc, err := s.services.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, repository.ErrNotFound
	}
	if err := s.loadChildren(ctx, svc, true); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogServiceImpl) loadChildren(ctx context.Context, svc *model.Service, activeOnly bool) error {
	items, err := s.items.ListByService(ctx, svc.ID, activeOnly)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	benefits, err := s.benefits.ListByService(ctx, svc.ID, activeOnly)
	if err != nil {
		return fmt.Errorf("list benefits: %w", err)
	}
	svc.Items = items
	svc.Benefits = benefits
	return nil
}

// CreateService はサービスを作成する。slug 未指定なら name から生成する
func (s *CatalogServiceImpl) CreateService(ctx context.Context, in model.ServicePatch) (*model.Service, error) {
	svc := &model.Service{IsActive: true}
	applyServicePatch(svc, in)
	svc.Icon = svc.Icon.Resolved()
	if err := validateService(svc, in, true); err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService は部分更新する。name が変わり slug が指定されていなければ slug を再生成する
func (s *CatalogServiceImpl) UpdateService(ctx context.Context, id string, patch model.ServicePatch) (*model.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyServicePatch(svc, patch)
	if err := validateService(svc, patch, false); err != nil {
		return nil, err
	}
	if err := s.services.Update(ctx, svc, patch.Order != nil); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogServiceImpl) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

func (s *CatalogServiceImpl) ReorderServices(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return invalid("ids_required")
	}
	return s.services.Reorder(ctx, ids)
}

func applyServicePatch(svc *model.Service, p model.ServicePatch) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name != svc.Name {
			svc.Slug = Slugify(name)
		}
		svc.Name = name
	}
	if p.Slug != nil {
		svc.Slug = Slugify(*p.Slug)
	}
	if p.Description != nil {
		svc.Description = *p.Description
	}
	if p.Image != nil {
		svc.Image = *p.Image
	}
	if p.Icon != nil {
		svc.Icon = model.ParseServiceIcon(*p.Icon).Resolved()
	}
	if p.Order != nil {
		svc.Order = *p.Order
	}
	if p.IsActive != nil {
		svc.IsActive = *p.IsActive
	}
}

// validateService は作成時は全体を、更新時は patch に含まれる項目だけを検証する
func validateService(svc *model.Service, p model.ServicePatch, creating bool) error {
	if (creating || p.Name != nil) && svc.Name == "" {
		return invalid("name_required")
	}
	if (creating || p.Name != nil || p.Slug != nil) && svc.Slug == "" {
		return invalid("slug_required")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

func (s *CatalogServiceImpl) ListItems(ctx context.Context, serviceID string) ([]*model.ServiceItem, error) {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}
	return s.items.ListByService(ctx, serviceID, false)
}

// GetItem は serviceID 配下の品目を返す。別サービスの品目なら ErrNotFound
func (s *CatalogServiceImpl) GetItem(ctx context.Context, serviceID, itemID string) (*model.ServiceItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.ServiceID != serviceID {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (s *CatalogServiceImpl) CreateItem(ctx context.Context, serviceID string, in model.ServiceItemPatch) (*model.ServiceItem, error) {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}
	in.Name = trimmed(in.Name)
	item := &model.ServiceItem{ServiceID: serviceID, IsActive: true}
	in.Apply(item)
	if item.Name == "" {
		return nil, invalid("name_required")
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogServiceImpl) UpdateItem(ctx context.Context, serviceID, itemID string, patch model.ServiceItemPatch) (*model.ServiceItem, error) {
	patch.Name = trimmed(patch.Name)
	if patch.Name != nil && *patch.Name == "" {
		return nil, invalid("name_required")
	}
	item, err := s.GetItem(ctx, serviceID, itemID)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	if err := s.items.Update(ctx, item, patch.Order != nil); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogServiceImpl) DeleteItem(ctx context.Context, serviceID, itemID string) error {
	if _, err := s.GetItem(ctx, serviceID, itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}

func (s *CatalogServiceImpl) ReorderItems(ctx context.Context, serviceID string, ids []string) error {
	if len(ids) == 0 {
		return invalid("ids_required")
	}
	return s.items.Reorder(ctx, serviceID, ids)
}

// ---------------------------------------------------------------------------
// Benefits
// ---------------------------------------------------------------------------

func (s *CatalogServiceImpl) ListBenefits(ctx context.Context, serviceID string) ([]*model.ServiceBenefit, error) {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}
	return s.benefits.ListByService(ctx, serviceID, false)
}

func (s *CatalogServiceImpl) GetBenefit(ctx context.Context, serviceID, benefitID string) (*model.ServiceBenefit, error) {
	b, err := s.benefits.GetByID(ctx, benefitID)
	if err != nil {
		return nil, err
	}
	if b.ServiceID != serviceID {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (s *CatalogServiceImpl) CreateBenefit(ctx context.Context, serviceID string, in model.ServiceBenefitPatch) (*model.ServiceBenefit, error) {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}
	in.Text = trimmed(in.Text)
	b := &model.ServiceBenefit{ServiceID: serviceID, IsActive: true}
	in.Apply(b)
	if b.Text == "" {
		return nil, invalid("text_required")
	}
	if err := s.benefits.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *CatalogServiceImpl) UpdateBenefit(ctx context.Context, serviceID, benefitID string, patch model.ServiceBenefitPatch) (*model.ServiceBenefit, error) {
	patch.Text = trimmed(patch.Text)
	if patch.Text != nil && *patch.Text == "" {
		return nil, invalid("text_required")
	}
	b, err := s.GetBenefit(ctx, serviceID, benefitID)
	if err != nil {
		return nil, err
	}
	patch.Apply(b)
	if err := s.benefits.Update(ctx, b, patch.Order != nil); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *CatalogServiceImpl) DeleteBenefit(ctx context.Context, serviceID, benefitID string) error {
	if _, err := s.GetBenefit(ctx, serviceID, benefitID); err != nil {
		return err
	}
	return s.benefits.Delete(ctx, benefitID)
}

func (s *CatalogServiceImpl) ReorderBenefits(ctx context.Context, serviceID string, ids []string) error {
	if len(ids) == 0 {
		return invalid("ids_required")
	}
	return s.benefits.Reorder(ctx, serviceID, ids)
}
