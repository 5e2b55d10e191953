package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockNotifier
// ---------------------------------------------------------------------------

type mockNotifier struct {
	notifyFunc func(ctx context.Context, msg *model.ContactMessage) error
}

func (m *mockNotifier) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, msg)
	}
	return nil
}

func newSyncContactService(repo repository.ContactRepository, n *mockNotifier) ContactService {
	var svc ContactService
	if n == nil {
		svc = NewContactService(repo, nil)
	} else {
		svc = NewContactService(repo, n)
	}
	svc.(*contactServiceImpl).dispatch = func(f func()) { f() }
	return svc
}

func validMessage() *model.ContactMessage {
	return &model.ContactMessage{
		FirstName: "Selam",
		LastName:  "Tesfaye",
		Email:     "selam@example.com",
		Subject:   "Quote",
		Message:   "Please send a quote for cement.",
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestContactService_Submit_StoresNewMessage(t *testing.T) {
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, nil)

	msg := validMessage()
	msg.Phone = "0911 234 567"
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.rows))
	}
	saved := repo.rows[0]
	if saved.Status != model.MessageNew {
		t.Errorf("expected status NEW, got %q", saved.Status)
	}
	if saved.Phone != "+251911234567" {
		t.Errorf("phone not normalized: %q", saved.Phone)
	}
	if msg.ID == "" {
		t.Error("expected ID to be populated")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestContactService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *model.ContactMessage)
		want   string
	}{
		{"missing email", func(m *model.ContactMessage) { m.Email = "" }, "missing_required_fields"},
		{"blank first name", func(m *model.ContactMessage) { m.FirstName = "   " }, "missing_required_fields"},
		{"missing subject", func(m *model.ContactMessage) { m.Subject = "" }, "missing_required_fields"},
		{"missing message", func(m *model.ContactMessage) { m.Message = "" }, "missing_required_fields"},
		{"no at sign", func(m *model.ContactMessage) { m.Email = "selam.example.com" }, "invalid_email"},
		{"no dot in domain", func(m *model.ContactMessage) { m.Email = "selam@example" }, "invalid_email"},
		{"space in email", func(m *model.ContactMessage) { m.Email = "se lam@example.com" }, "invalid_email"},
		{"too long", func(m *model.ContactMessage) { m.Message = strings.Repeat("ሀ", MaxContactMessageLength+1) }, "message_too_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memContactRepo{}
			svc := newSyncContactService(repo, nil)
			msg := validMessage()
			tt.mutate(msg)

			err := svc.Submit(context.Background(), msg)
			if got := ValidationCode(err); got != tt.want {
				t.Errorf("got %q (%v), want %q", got, err, tt.want)
			}
			if len(repo.rows) != 0 {
				t.Errorf("nothing should be stored, got %d rows", len(repo.rows))
			}
		})
	}
}

func TestContactService_Submit_MaxLengthAccepted(t *testing.T) {
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, nil)
	msg := validMessage()
	msg.Message = strings.Repeat("a", MaxContactMessageLength)
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Errorf("message at the limit should be accepted: %v", err)
	}
}

func TestContactService_Submit_Notifies(t *testing.T) {
	var notified *model.ContactMessage
	n := &mockNotifier{notifyFunc: func(_ context.Context, m *model.ContactMessage) error {
		notified = m
		return nil
	}}
	svc := newSyncContactService(&memContactRepo{}, n)

	msg := validMessage()
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if notified == nil || notified.ID != msg.ID {
		t.Fatalf("expected notification for %q, got %+v", msg.ID, notified)
	}
	if notified == msg {
		t.Error("notifier should receive a copy")
	}
}

func TestContactService_Submit_NotifierFailureIgnored(t *testing.T) {
	n := &mockNotifier{notifyFunc: func(context.Context, *model.ContactMessage) error {
		return errors.New("smtp down")
	}}
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, n)
	if err := svc.Submit(context.Background(), validMessage()); err != nil {
		t.Errorf("notification failure must not surface: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Errorf("message should still be stored")
	}
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	svc := newSyncContactService(&memContactRepo{err: errors.New("db write failed")}, nil)
	if err := svc.Submit(context.Background(), validMessage()); err == nil {
		t.Error("expected error from repository, got nil")
	}
}

// ---------------------------------------------------------------------------
// Admin inbox
// ---------------------------------------------------------------------------

func TestContactService_Open_MarksRead(t *testing.T) {
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, nil)
	msg := validMessage()
	_ = svc.Submit(context.Background(), msg)

	opened, err := svc.Open(context.Background(), msg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if opened.Status != model.MessageRead {
		t.Errorf("expected READ, got %q", opened.Status)
	}

	list, _ := svc.List(context.Background(), model.ContactListOptions{})
	if list[0].Status != model.MessageRead {
		t.Errorf("next fetch should see READ, got %q", list[0].Status)
	}

	// Replied messages stay replied when reopened.
	if _, err := svc.Update(context.Background(), msg.ID, model.ContactMessagePatch{Status: statusPtr(model.MessageReplied)}); err != nil {
		t.Fatal(err)
	}
	again, _ := svc.Open(context.Background(), msg.ID)
	if again.Status != model.MessageReplied {
		t.Errorf("expected REPLIED to stick, got %q", again.Status)
	}

	if _, err := svc.Open(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func statusPtr(s model.MessageStatus) *model.MessageStatus { return &s }

func TestContactService_Update(t *testing.T) {
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, nil)
	msg := validMessage()
	_ = svc.Submit(context.Background(), msg)

	got, err := svc.Update(context.Background(), msg.ID, model.ContactMessagePatch{Notes: strPtr("called back")})
	if err != nil {
		t.Fatal(err)
	}
	if got.Notes != "called back" || got.Status != model.MessageNew {
		t.Errorf("notes-only patch changed status: %+v", got)
	}

	lower := model.MessageStatus("archived")
	got, err = svc.Update(context.Background(), msg.ID, model.ContactMessagePatch{Status: &lower})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != model.MessageArchived {
		t.Errorf("expected ARCHIVED, got %q", got.Status)
	}

	_, err = svc.Update(context.Background(), msg.ID, model.ContactMessagePatch{Status: statusPtr("SPAM")})
	if ValidationCode(err) != "invalid_status" {
		t.Errorf("expected invalid_status, got %v", err)
	}
}

func TestContactService_List_ForwardsOptions(t *testing.T) {
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, nil)
	for i := 0; i < 3; i++ {
		_ = svc.Submit(context.Background(), validMessage())
	}
	first := repo.rows[0].ID
	if _, err := svc.Open(context.Background(), first); err != nil {
		t.Fatal(err)
	}

	newOnly, err := svc.List(context.Background(), model.ContactListOptions{Status: "NEW"})
	if err != nil {
		t.Fatal(err)
	}
	if len(newOnly) != 2 {
		t.Errorf("expected 2 NEW messages, got %d", len(newOnly))
	}

	page, _ := svc.List(context.Background(), model.ContactListOptions{Limit: 1, Offset: 1})
	if len(page) != 1 {
		t.Errorf("expected 1 message in page, got %d", len(page))
	}

	if _, err := svc.List(context.Background(), model.ContactListOptions{Status: "bogus"}); ValidationCode(err) != "invalid_status" {
		t.Errorf("expected invalid_status, got %v", err)
	}
	if _, err := svc.List(context.Background(), model.ContactListOptions{Limit: -1}); ValidationCode(err) != "invalid_pagination" {
		t.Errorf("expected invalid_pagination, got %v", err)
	}
}

func TestContactService_Delete(t *testing.T) {
	repo := &memContactRepo{}
	svc := newSyncContactService(repo, nil)
	msg := validMessage()
	_ = svc.Submit(context.Background(), msg)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), msg.ID); err != nil {
		t.Fatal(err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("expected row removed")
	}
}
