package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"accountease/pkg/utils"
)

// Message is a plaintext email.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Mailer sends plaintext messages. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers mail through a single SMTP server using net/smtp.
type SMTPMailer struct {
	addr        string
	host        string
	defaultFrom string
	auth        smtp.Auth
}

func NewSMTPMailer(cfg utils.EmailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.User != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	return &SMTPMailer{
		addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		host:        cfg.Host,
		defaultFrom: cfg.From,
		auth:        auth,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients provided")
	}

	from := msg.From
	if from == "" {
		from = m.defaultFrom
	}
	if from == "" {
		return fmt.Errorf("no sender provided")
	}

	var headers []string
	headers = append(headers, fmt.Sprintf("From: %s", from))
	headers = append(headers, fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")))
	headers = append(headers, fmt.Sprintf("Subject: %s", msg.Subject))
	headers = append(headers, "MIME-Version: 1.0")
	headers = append(headers, "Content-Type: text/plain; charset=UTF-8")

	raw := strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.Body

	return smtp.SendMail(m.addr, m.auth, from, msg.To, []byte(raw))
}
