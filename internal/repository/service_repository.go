package repository

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
)

// ServiceRepository は事業サービスの永続化インターフェース
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	GetBySlug(ctx context.Context, slug string) (*model.Service, error)
	// Create returns ErrConflict when the slug is already taken.
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service, reposition bool) error
	// Delete removes the service together with its items and benefits.
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	CountActive(ctx context.Context) (int, error)
}

// ServiceItemRepository はサービス配下の取扱品目の永続化インターフェース
type ServiceItemRepository interface {
	ListByService(ctx context.Context, serviceID string, activeOnly bool) ([]*model.ServiceItem, error)
	GetByID(ctx context.Context, id string) (*model.ServiceItem, error)
	Create(ctx context.Context, item *model.ServiceItem) error
	Update(ctx context.Context, item *model.ServiceItem, reposition bool) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, serviceID string, ids []string) error
}

// ServiceBenefitRepository はサービス配下の導入メリットの永続化インターフェース
type ServiceBenefitRepository interface {
	ListByService(ctx context.Context, serviceID string, activeOnly bool) ([]*model.ServiceBenefit, error)
	GetByID(ctx context.Context, id string) (*model.ServiceBenefit, error)
	Create(ctx context.Context, benefit *model.ServiceBenefit) error
	Update(ctx context.Context, benefit *model.ServiceBenefit, reposition bool) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, serviceID string, ids []string) error
}
