// Package mailx delivers transactional mail: verification links and login
// codes. The SMTP mailer is used in production; the log mailer writes the
// message to the logger so development and e2e runs can read it back.
package mailx

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Message is a plain text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPMailer sends through an SMTP relay with PLAIN auth when a user is set.
type SMTPMailer struct {
	Config SMTPConfig

	// sendMail is smtp.SendMail, replaced in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{Config: cfg, sendMail: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("mailx: header injection in message")
	}

	addr := fmt.Sprintf("%s:%d", m.Config.Host, m.Config.Port)

	var auth smtp.Auth
	if m.Config.User != "" {
		auth = smtp.PlainAuth("", m.Config.User, m.Config.Password, m.Config.Host)
	}

	if err := m.sendMail(addr, auth, m.Config.From, []string{msg.To}, Render(m.Config.From, msg)); err != nil {
		return fmt.Errorf("mailx: send to %s: %w", msg.To, err)
	}
	return nil
}

// Render builds the RFC 5322 message bytes.
func Render(from string, msg Message) []byte {
	headers := []string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		msg.Body,
	}
	return []byte(strings.Join(headers, "\r\n"))
}

// LogMailer writes every message to the logger at info level. Bodies contain
// secrets; never use it in production.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.Logger.InfoContext(ctx, "mail_sent",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
