package notify

import (
	"context"
	"log/slog"
)

// NoopSender はメールを送らずにログだけ残す（開発環境用）
type NoopSender struct{}

func (NoopSender) Send(_ context.Context, e Email) error {
	slog.Debug("mail skipped", "to", e.To, "subject", e.Subject)
	return nil
}
