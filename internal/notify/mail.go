package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Mailer delivers one HTML email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c SMTPConfig) sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) auth() smtp.Auth {
	return smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(m.cfg.sender(), to, subject, htmlBody)
	if err := m.send(m.cfg.addr(), m.auth(), m.cfg.sender(), []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Verify dials the server, upgrades to TLS when offered and authenticates.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", m.cfg.addr())
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if err := c.Auth(m.auth()); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	return c.Quit()
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from,
		to,
		mime.QEncoding.Encode("utf-8", subject),
		htmlBody,
	))
}

// LogMailer stands in when no SMTP server is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"bytes":   len(htmlBody),
	}).Info("email not sent: smtp not configured")
	return nil
}
