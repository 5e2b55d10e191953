package repository

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
)

// TeamMemberRepository はチームメンバーの永続化インターフェース
type TeamMemberRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.TeamMember, error)
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)
	Create(ctx context.Context, member *model.TeamMember) error
	Update(ctx context.Context, member *model.TeamMember, reposition bool) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	CountActive(ctx context.Context) (int, error)
}
