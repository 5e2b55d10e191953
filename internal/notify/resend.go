package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ResendSender は Resend API 経由で送信する
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender は ResendSender を生成する
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

func (s *ResendSender) Send(ctx context.Context, e Email) error {
	from := e.From
	if from == "" {
		from = s.from
	}
	params := &resend.SendEmailRequest{
		From:    from,
		To:      e.To,
		Subject: e.Subject,
		Html:    e.HTML,
		Text:    e.Text,
	}
	if e.ReplyTo != "" {
		params.ReplyTo = e.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("notify: resend send: %w", err)
	}
	slog.Info("mail sent", "provider", "resend", "message_id", sent.Id, "to", e.To)
	return nil
}
