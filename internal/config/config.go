package config

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// DB
	DatabaseURL string
	LogSQL      bool

	// Tokens
	SigningKey string // HS256 secret
	Issuer     string

	// Mail relay
	MailUser     string
	MailPassword string
	MailFrom     string
	SMTPHost     string
	SMTPPort     int

	// Hashing
	BcryptCost int

	// HTTP
	Addr string

	// Observability
	Environment string
	LogLevel    string
}

// Load builds the process configuration from the environment. The store URL,
// mail identity/credential, and signing secret are required; the process
// refuses to start without them.
func Load() Config {
	mailUser := must("MAIL_USER")
	return Config{
		DatabaseURL: must("DATABASE_URL"),
		LogSQL:      getbool("LOG_SQL", false),

		SigningKey: must("SIGNING_KEY"),
		Issuer:     getenv("ISSUER", "passwordreset"),

		MailUser:     mailUser,
		MailPassword: must("MAIL_PASSWORD"),
		MailFrom:     getenv("MAIL_FROM", mailUser),
		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getint("SMTP_PORT", 587),

		BcryptCost: getint("BCRYPT_COST", bcrypt.DefaultCost),

		Addr: getenv("ADDR", ":3000"),

		Environment: getenv("ENVIRONMENT", "dev"),
		LogLevel:    getenv("LOG_LEVEL", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("missing required env", "key", k)
		os.Exit(1)
	}
	return v
}
