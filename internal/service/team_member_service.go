package service

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// TeamMemberService はチームメンバーのビジネスロジック
type TeamMemberService interface {
	List(ctx context.Context, activeOnly bool) ([]*model.TeamMember, error)
	Get(ctx context.Context, id string) (*model.TeamMember, error)
	Create(ctx context.Context, in model.TeamMemberPatch) (*model.TeamMember, error)
	Update(ctx context.Context, id string, patch model.TeamMemberPatch) (*model.TeamMember, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// TeamMemberServiceImpl は TeamMemberService の実装
type TeamMemberServiceImpl struct {
	repo repository.TeamMemberRepository
}

// NewTeamMemberService は TeamMemberServiceImpl を生成する
func NewTeamMemberService(repo repository.TeamMemberRepository) TeamMemberService {
	return &TeamMemberServiceImpl{repo: repo}
}

func (s *TeamMemberServiceImpl) List(ctx context.Context, activeOnly bool) ([]*model.TeamMember, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *TeamMemberServiceImpl) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

// Create は新規メンバーを作成する。電話番号は解釈できれば E.164 に正規化する
func (s *TeamMemberServiceImpl) Create(ctx context.Context, in model.TeamMemberPatch) (*model.TeamMember, error) {
	if err := normalizeTeamMemberPatch(&in); err != nil {
		return nil, err
	}
	member := &model.TeamMember{IsActive: true}
	in.Apply(member)
	if member.Name == "" {
		return nil, invalid("name_required")
	}
	if member.Role == "" {
		return nil, invalid("role_required")
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Update は指定されたフィールドだけを検証して書き換える。保存済みの値は再検証しない
func (s *TeamMemberServiceImpl) Update(ctx context.Context, id string, patch model.TeamMemberPatch) (*model.TeamMember, error) {
	if err := normalizeTeamMemberPatch(&patch); err != nil {
		return nil, err
	}
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(member)
	if err := s.repo.Update(ctx, member, patch.Order != nil); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *TeamMemberServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TeamMemberServiceImpl) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return invalid("ids_required")
	}
	return s.repo.Reorder(ctx, ids)
}

func normalizeTeamMemberPatch(p *model.TeamMemberPatch) error {
	p.Name = trimmed(p.Name)
	p.Role = trimmed(p.Role)
	p.Email = trimmed(p.Email)
	if p.Name != nil && *p.Name == "" {
		return invalid("name_required")
	}
	if p.Role != nil && *p.Role == "" {
		return invalid("role_required")
	}
	if p.Email != nil && *p.Email != "" && !emailPattern.MatchString(*p.Email) {
		return invalid("invalid_email")
	}
	if p.Phone != nil {
		phone := normalizePhone(*p.Phone)
		p.Phone = &phone
	}
	return nil
}
