package service

import "strings"

// trimmed returns a trimmed copy of *s, or nil when the field was not sent.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
