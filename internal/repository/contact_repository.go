package repository

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	// Update writes status and notes.
	Update(ctx context.Context, msg *model.ContactMessage) error
	// MarkRead flips a NEW message to READ and reports whether a row changed.
	MarkRead(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status model.MessageStatus) (int, error)
}
