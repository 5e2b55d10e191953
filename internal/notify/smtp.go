package notify

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

const smtpTimeout = 30 * time.Second

// SMTPSender は gomail で SMTP サーバーへ送信する
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender は SMTPSender を生成する
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send dials the server and delivers e, giving up when ctx is done.
func (s *SMTPSender) Send(ctx context.Context, e Email) error {
	msg := s.buildMessage(e)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("notify: smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(smtpTimeout):
		return context.DeadlineExceeded
	}
}

func (s *SMTPSender) buildMessage(e Email) *gomail.Message {
	from := e.From
	if from == "" {
		from = s.from
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", e.To...)
	if e.ReplyTo != "" {
		msg.SetHeader("Reply-To", e.ReplyTo)
	}
	msg.SetHeader("Subject", e.Subject)
	switch {
	case e.Text != "" && e.HTML != "":
		msg.SetBody("text/plain", e.Text)
		msg.AddAlternative("text/html", e.HTML)
	case e.HTML != "":
		msg.SetBody("text/html", e.HTML)
	default:
		msg.SetBody("text/plain", e.Text)
	}
	return msg
}
