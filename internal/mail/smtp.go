// Package mail delivers verification codes through an SMTP relay. Dispatch is
// fire-and-forget: no retries, no queueing; a failure is the caller's problem.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
)

type Config struct {
	Host     string // e.g. smtp.gmail.com
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // defaults to Username when empty
}

type SMTPDispatcher struct {
	cfg Config
	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPDispatcher(cfg Config) *SMTPDispatcher {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPDispatcher{cfg: cfg, send: smtp.SendMail}
}

// SendVerificationCode writes a plaintext message carrying the code. The
// context is consulted before dialing; net/smtp itself does not take one.
func (d *SMTPDispatcher) SendVerificationCode(ctx context.Context, to string, code int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(d.cfg.Host, strconv.Itoa(d.cfg.Port))
	auth := smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
	msg := buildMessage(d.cfg.From, to, "User verification",
		fmt.Sprintf("Your verification code is: %d", code))

	if err := d.send(addr, auth, d.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
