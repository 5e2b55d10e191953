package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/notify"
	"github.com/targetgroup/backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	notifyTimeout       = 30 * time.Second
	maxMessageListLimit = 200
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
	// dispatch runs the notification; tests replace it to run synchronously.
	dispatch func(func())
}

// NewContactService creates a ContactService backed by the given repository.
// notifier may be nil, in which case no notification is sent.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier) ContactService {
	return &contactServiceImpl{
		repo:     repo,
		notifier: notifier,
		dispatch: func(f func()) { go f() },
	}
}

// Submit validates the message, stores it as NEW and notifies the office
// in the background. Notification failures are only logged.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.FirstName = strings.TrimSpace(msg.FirstName)
	msg.LastName = strings.TrimSpace(msg.LastName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.FirstName == "" || msg.LastName == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return invalid("missing_required_fields")
	}
	if !emailPattern.MatchString(msg.Email) {
		return invalid("invalid_email")
	}
	if utf8.RuneCountInString(msg.Message) > MaxContactMessageLength {
		return invalid("message_too_long")
	}
	msg.Phone = normalizePhone(msg.Phone)

	now := time.Now().UTC()
	msg.Status = model.MessageNew
	msg.Notes = ""
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}
	slog.Info("contact message received", "id", msg.ID)

	if s.notifier != nil {
		copied := *msg
		bg := context.WithoutCancel(ctx)
		s.dispatch(func() {
			nctx, cancel := context.WithTimeout(bg, notifyTimeout)
			defer cancel()
			if err := s.notifier.NotifyContact(nctx, &copied); err != nil {
				slog.Error("contact notification failed", "id", copied.ID, "error", err)
			}
		})
	}
	return nil
}

// List returns contact messages according to the given filter/pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if opts.Status != "" && !strings.EqualFold(opts.Status, "all") &&
		!model.MessageStatus(strings.ToUpper(opts.Status)).Valid() {
		return nil, invalid("invalid_status")
	}
	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, invalid("invalid_pagination")
	}
	if opts.Limit == 0 || opts.Limit > maxMessageListLimit {
		opts.Limit = maxMessageListLimit
	}
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) Open(ctx context.Context, id string) (*model.ContactMessage, error) {
	changed, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed {
		slog.Debug("contact message marked read", "id", id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *contactServiceImpl) Update(ctx context.Context, id string, patch model.ContactMessagePatch) (*model.ContactMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		status := model.MessageStatus(strings.ToUpper(string(*patch.Status)))
		if !status.Valid() {
			return nil, invalid("invalid_status")
		}
		msg.Status = status
	}
	if patch.Notes != nil {
		msg.Notes = *patch.Notes
	}
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
