package model

import "time"

// MessageStatus はお問い合わせメッセージの対応状況
type MessageStatus string

const (
	MessageNew      MessageStatus = "NEW"
	MessageRead     MessageStatus = "READ"
	MessageReplied  MessageStatus = "REPLIED"
	MessageArchived MessageStatus = "ARCHIVED"
)

// Valid reports whether s is one of the four known statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageNew, MessageRead, MessageReplied, MessageArchived:
		return true
	}
	return false
}

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string        `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// FullName joins first and last name for display.
func (m *ContactMessage) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// ContactMessagePatch is the admin update payload; only status and notes are editable.
type ContactMessagePatch struct {
	Status *MessageStatus `json:"status"`
	Notes  *string        `json:"notes"`
}

// ContactListOptions carries filter and pagination parameters for listing contact messages.
type ContactListOptions struct {
	// Status filters by message status. Empty string and "all" return all messages.
	Status string
	Limit  int
	Offset int
}
