// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"stackwiser/internal/config"
	"stackwiser/internal/middleware"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	// Kind labels the message for metrics (verification, confirmation, reset).
	Kind string
}

// Sender delivers messages. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends mail through a single SMTP relay using STARTTLS.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

// NewSMTPSender builds a sender from application config.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
	}
}

// Send delivers the message. The connection carries dial and write deadlines
// so a stalled relay cannot hang the request.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	fromHeader := fmt.Sprintf("%s <%s>", s.fromName, s.from)

	raw := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", msg.To),
		fmt.Sprintf("Subject: %s", msg.Subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		msg.HTML,
	}, "\r\n")

	middleware.Logger.InfoContext(ctx, "sending email",
		slog.String("to", msg.To),
		slog.String("kind", msg.Kind),
	)

	if err := s.sendSMTPWithTimeout(msg.To, []byte(raw)); err != nil {
		middleware.EmailFailures.WithLabelValues(msg.Kind).Inc()
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	middleware.EmailsSent.WithLabelValues(msg.Kind).Inc()
	return nil
}

func (s *SMTPSender) sendSMTPWithTimeout(to string, raw []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	return w.Close()
}
