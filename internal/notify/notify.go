// Package notify はお問い合わせ受信時に管理者へメールで通知する。
// 送信手段は SMTP (gomail) / Resend API / 何もしない の 3 種類
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/targetgroup/backend/internal/config"
	"github.com/targetgroup/backend/internal/model"
)

// Email は送信する 1 通分のメール
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender は Email を配送する
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// Notifier はお問い合わせ受信を通知する
type Notifier interface {
	NotifyContact(ctx context.Context, msg *model.ContactMessage) error
}

// NewSender returns the Sender selected by cfg.Provider.
func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Provider {
	case "", "none":
		return NoopSender{}, nil
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("notify: mail.smtp_host is required for smtp")
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.From), nil
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("notify: mail.resend_api_key is required for resend")
		}
		return NewResendSender(cfg.ResendAPIKey, cfg.From), nil
	default:
		return nil, fmt.Errorf("notify: unknown provider %q", cfg.Provider)
	}
}

// ContactNotifier は問い合わせ内容を整形して管理者アドレスへ送る
type ContactNotifier struct {
	sender Sender
	to     []string
}

// NewContactNotifier は ContactNotifier を生成する。to はカンマ区切りで複数指定できる
func NewContactNotifier(sender Sender, to string) *ContactNotifier {
	var recipients []string
	for _, addr := range strings.Split(to, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return &ContactNotifier{sender: sender, to: recipients}
}

var _ Notifier = (*ContactNotifier)(nil)

// NotifyContact sends one message to the configured recipients, replying to the submitter.
func (n *ContactNotifier) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	if len(n.to) == 0 {
		return nil
	}
	e, err := contactEmail(msg)
	if err != nil {
		return err
	}
	e.To = n.to
	return n.sender.Send(ctx, e)
}

var contactHTML = template.Must(template.New("contact").Parse(`<h2>New contact message</h2>
<p><strong>From:</strong> {{.FullName}} &lt;{{.Email}}&gt;</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<p style="white-space: pre-wrap">{{.Message}}</p>
`))

func contactEmail(msg *model.ContactMessage) (Email, error) {
	var html bytes.Buffer
	if err := contactHTML.Execute(&html, msg); err != nil {
		return Email{}, fmt.Errorf("notify: render: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "From: %s <%s>\n", msg.FullName(), msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&text, "Phone: %s\n", msg.Phone)
	}
	fmt.Fprintf(&text, "Subject: %s\n\n%s\n", msg.Subject, msg.Message)

	return Email{
		ReplyTo: msg.Email,
		Subject: "[Website] " + msg.Subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
