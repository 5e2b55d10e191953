package model

import (
	"testing"
	"time"
)

func TestParseServiceIcon(t *testing.T) {
	tests := []struct {
		in   string
		want ServiceIcon
	}{
		{"Building2", IconBuilding2},
		{"Ship", IconShip},
		{"Monitor", IconMonitor},
		{"", DefaultServiceIcon},
		{"building2", DefaultServiceIcon},
		{"Rocket", DefaultServiceIcon},
	}
	for _, tt := range tests {
		if got := ParseServiceIcon(tt.in); got != tt.want {
			t.Errorf("ParseServiceIcon(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := ServiceIcon("Unknown").Resolved(); got != IconBriefcase {
		t.Errorf("Resolved() = %q, want %q", got, IconBriefcase)
	}
}

func TestServiceColor(t *testing.T) {
	if got := ServiceColor("agro-industry"); got != "bg-green-500" {
		t.Errorf("ServiceColor(agro-industry) = %q", got)
	}
	if got := ServiceColor("custom"); got != DefaultServiceColor {
		t.Errorf("ServiceColor(custom) = %q, want default", got)
	}
}

func TestMessageStatus_Valid(t *testing.T) {
	for _, s := range []MessageStatus{MessageNew, MessageRead, MessageReplied, MessageArchived} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []MessageStatus{"", "new", "DELETED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestContactMessage_FullName(t *testing.T) {
	m := &ContactMessage{FirstName: "Jane", LastName: "Doe"}
	if got := m.FullName(); got != "Jane Doe" {
		t.Errorf("FullName() = %q", got)
	}
	m.LastName = ""
	if got := m.FullName(); got != "Jane" {
		t.Errorf("FullName() = %q", got)
	}
}

func TestHeroSlidePatch_Apply(t *testing.T) {
	s := &HeroSlide{Title: "old", Subtitle: "keep", Order: 2, IsActive: true}
	title := "new"
	inactive := false
	HeroSlidePatch{Title: &title, IsActive: &inactive}.Apply(s)
	if s.Title != "new" || s.IsActive {
		t.Errorf("patched fields not applied: %+v", s)
	}
	if s.Subtitle != "keep" || s.Order != 2 {
		t.Errorf("nil fields changed: %+v", s)
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: now}
	if !s.Expired(now) {
		t.Error("session should be expired at ExpiresAt")
	}
	if s.Expired(now.Add(-time.Second)) {
		t.Error("session should be valid before ExpiresAt")
	}
}
