package service

import (
	"context"

	"github.com/targetgroup/backend/internal/model"
)

// ContactSuccessMessage is returned to the visitor after a successful submission.
const ContactSuccessMessage = "Thank you for your message. We will get back to you soon!"

// MaxContactMessageLength is the upper bound on message length in runes.
const MaxContactMessageLength = 5000

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message with status NEW.
	// msg.ID and timestamps are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// Open returns a message for an admin to read, moving NEW to READ.
	Open(ctx context.Context, id string) (*model.ContactMessage, error)

	// Update changes status and notes.
	Update(ctx context.Context, id string, patch model.ContactMessagePatch) (*model.ContactMessage, error)

	Delete(ctx context.Context, id string) error
}
