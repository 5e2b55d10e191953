package handler

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock HeroSlideService
// ---------------------------------------------------------------------------

type mockHeroSlideService struct {
	listFunc    func(ctx context.Context, activeOnly bool) ([]*model.HeroSlide, error)
	getFunc     func(ctx context.Context, id string) (*model.HeroSlide, error)
	createFunc  func(ctx context.Context, in model.HeroSlidePatch) (*model.HeroSlide, error)
	updateFunc  func(ctx context.Context, id string, patch model.HeroSlidePatch) (*model.HeroSlide, error)
	deleteFunc  func(ctx context.Context, id string) error
	reorderFunc func(ctx context.Context, ids []string) error
}

func (m *mockHeroSlideService) List(ctx context.Context, activeOnly bool) ([]*model.HeroSlide, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockHeroSlideService) Get(ctx context.Context, id string) (*model.HeroSlide, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockHeroSlideService) Create(ctx context.Context, in model.HeroSlidePatch) (*model.HeroSlide, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.HeroSlide{ID: "new"}, nil
}

func (m *mockHeroSlideService) Update(ctx context.Context, id string, patch model.HeroSlidePatch) (*model.HeroSlide, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockHeroSlideService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockHeroSlideService) Reorder(ctx context.Context, ids []string) error {
	if m.reorderFunc != nil {
		return m.reorderFunc(ctx, ids)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock TeamMemberService
// ---------------------------------------------------------------------------

type mockTeamMemberService struct {
	listFunc   func(ctx context.Context, activeOnly bool) ([]*model.TeamMember, error)
	updateFunc func(ctx context.Context, id string, patch model.TeamMemberPatch) (*model.TeamMember, error)
}

func (m *mockTeamMemberService) List(ctx context.Context, activeOnly bool) ([]*model.TeamMember, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockTeamMemberService) Get(_ context.Context, _ string) (*model.TeamMember, error) {
	return nil, repository.ErrNotFound
}

func (m *mockTeamMemberService) Create(_ context.Context, _ model.TeamMemberPatch) (*model.TeamMember, error) {
	return &model.TeamMember{ID: "new"}, nil
}

func (m *mockTeamMemberService) Update(ctx context.Context, id string, patch model.TeamMemberPatch) (*model.TeamMember, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockTeamMemberService) Delete(_ context.Context, _ string) error { return nil }
func (m *mockTeamMemberService) Reorder(_ context.Context, _ []string) error { return nil }

// ---------------------------------------------------------------------------
// Mock CatalogService
// ---------------------------------------------------------------------------

type mockCatalogService struct {
	listServicesFunc  func(ctx context.Context, activeOnly bool) ([]*model.Service, error)
	getServiceFunc    func(ctx context.Context, id string) (*model.Service, error)
	getPublishedFunc  func(ctx context.Context, slug string) (*model.Service, error)
	createServiceFunc func(ctx context.Context, in model.ServicePatch) (*model.Service, error)
	deleteServiceFunc func(ctx context.Context, id string) error
	createItemFunc    func(ctx context.Context, serviceID string, in model.ServiceItemPatch) (*model.ServiceItem, error)
	reorderItemsFunc  func(ctx context.Context, serviceID string, ids []string) error
	deleteBenefitFunc func(ctx context.Context, serviceID, benefitID string) error
}

func (m *mockCatalogService) ListServices(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	if m.listServicesFunc != nil {
		return m.listServicesFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockCatalogService) GetService(ctx context.Context, id string) (*model.Service, error) {
	if m.getServiceFunc != nil {
		return m.getServiceFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) GetPublishedService(ctx context.Context, slug string) (*model.Service, error) {
	if m.getPublishedFunc != nil {
		return m.getPublishedFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) CreateService(ctx context.Context, in model.ServicePatch) (*model.Service, error) {
	if m.createServiceFunc != nil {
		return m.createServiceFunc(ctx, in)
	}
	return &model.Service{ID: "new"}, nil
}

func (m *mockCatalogService) UpdateService(_ context.Context, _ string, _ model.ServicePatch) (*model.Service, error) {
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) DeleteService(ctx context.Context, id string) error {
	if m.deleteServiceFunc != nil {
		return m.deleteServiceFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalogService) ReorderServices(_ context.Context, _ []string) error { return nil }

func (m *mockCatalogService) ListItems(_ context.Context, _ string) ([]*model.ServiceItem, error) {
	return nil, nil
}

func (m *mockCatalogService) GetItem(_ context.Context, _, _ string) (*model.ServiceItem, error) {
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) CreateItem(ctx context.Context, serviceID string, in model.ServiceItemPatch) (*model.ServiceItem, error) {
	if m.createItemFunc != nil {
		return m.createItemFunc(ctx, serviceID, in)
	}
	return &model.ServiceItem{ID: "new", ServiceID: serviceID}, nil
}

func (m *mockCatalogService) UpdateItem(_ context.Context, _, _ string, _ model.ServiceItemPatch) (*model.ServiceItem, error) {
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) DeleteItem(_ context.Context, _, _ string) error { return nil }

func (m *mockCatalogService) ReorderItems(ctx context.Context, serviceID string, ids []string) error {
	if m.reorderItemsFunc != nil {
		return m.reorderItemsFunc(ctx, serviceID, ids)
	}
	return nil
}

func (m *mockCatalogService) ListBenefits(_ context.Context, _ string) ([]*model.ServiceBenefit, error) {
	return nil, nil
}

func (m *mockCatalogService) GetBenefit(_ context.Context, _, _ string) (*model.ServiceBenefit, error) {
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) CreateBenefit(_ context.Context, serviceID string, _ model.ServiceBenefitPatch) (*model.ServiceBenefit, error) {
	return &model.ServiceBenefit{ID: "new", ServiceID: serviceID}, nil
}

func (m *mockCatalogService) UpdateBenefit(_ context.Context, _, _ string, _ model.ServiceBenefitPatch) (*model.ServiceBenefit, error) {
	return nil, repository.ErrNotFound
}

func (m *mockCatalogService) DeleteBenefit(ctx context.Context, serviceID, benefitID string) error {
	if m.deleteBenefitFunc != nil {
		return m.deleteBenefitFunc(ctx, serviceID, benefitID)
	}
	return nil
}

func (m *mockCatalogService) ReorderBenefits(_ context.Context, _ string, _ []string) error {
	return nil
}

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc   func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	openFunc   func(ctx context.Context, id string) (*model.ContactMessage, error)
	updateFunc func(ctx context.Context, id string, patch model.ContactMessagePatch) (*model.ContactMessage, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactService) Open(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) Update(ctx context.Context, id string, patch model.ContactMessagePatch) (*model.ContactMessage, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock AuthService / SessionManager / SessionValidator
// ---------------------------------------------------------------------------

type mockAuthService struct {
	loginFunc   func(ctx context.Context, email, password string) (*model.User, error)
	getUserFunc func(ctx context.Context, id string) (*model.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAuthService) CreateUser(_ context.Context, _, _, _ string) (*model.User, error) {
	return nil, nil
}

func (m *mockAuthService) ChangePassword(_ context.Context, _, _ string) error { return nil }

type mockSessionManager struct {
	createFunc func(ctx context.Context, userID string) (*model.Session, error)
	deleted    []string
}

func (m *mockSessionManager) CreateSession(ctx context.Context, userID string) (*model.Session, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID)
	}
	return &model.Session{Token: "tok-" + userID, UserID: userID}, nil
}

func (m *mockSessionManager) DeleteSession(_ context.Context, token string) error {
	m.deleted = append(m.deleted, token)
	return nil
}

// mockValidator accepts exactly one token.
type mockValidator struct {
	token  string
	userID string
}

func (m *mockValidator) ValidateSession(_ context.Context, token string) (string, error) {
	if token == m.token {
		return m.userID, nil
	}
	return "", repository.ErrNotFound
}
