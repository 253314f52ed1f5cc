package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
)

func TestSendVerificationCodeBuildsMessage(t *testing.T) {
	d := NewSMTPDispatcher(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "relay@example.com",
		Password: "secret",
	})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	d.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := d.SendVerificationCode(context.Background(), "a@x.com", 1234); err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("relay addr = %q", gotAddr)
	}
	if gotFrom != "relay@example.com" {
		t.Fatalf("from should default to the relay username, got %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "a@x.com" {
		t.Fatalf("recipients = %v", gotTo)
	}

	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: User verification") {
		t.Fatalf("missing subject header: %q", msg)
	}
	if !strings.Contains(msg, "Your verification code is: 1234") {
		t.Fatalf("missing code line: %q", msg)
	}
}

func TestSendVerificationCodeHonorsContext(t *testing.T) {
	d := NewSMTPDispatcher(Config{Host: "smtp.example.com", Port: 587})
	d.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatalf("send must not be attempted with a canceled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.SendVerificationCode(ctx, "a@x.com", 1234); err == nil {
		t.Fatalf("expected a context error")
	}
}
