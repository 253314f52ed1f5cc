package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"passwordreset/internal/config"
	"passwordreset/internal/domain"
	"passwordreset/internal/mail"
	"passwordreset/internal/observability/logging"
	"passwordreset/internal/observability/metrics"
	impl "passwordreset/internal/service/impl"
	"passwordreset/internal/store"
	httpx "passwordreset/internal/transport/http"
	"passwordreset/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "passwordreset",
		Environment: os.Getenv("ENVIRONMENT"),
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	cfg := config.Load()

	metrics.MustRegister("passwordreset")

	gdb, err := db.Open(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := gdb.AutoMigrate(&domain.User{}); err != nil {
		logger.Error("automigrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	pw := impl.NewPasswordServiceBcrypt(cfg.BcryptCost)
	ts := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		SigningKey: []byte(cfg.SigningKey),
	})
	mailer := mail.NewSMTPDispatcher(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.MailUser,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
	})

	auth := impl.NewAuthServiceImpl(st, pw, ts)
	reset := impl.NewResetServiceImpl(st, mailer)

	handler := httpx.NewRouter(auth, reset)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("passwordreset service listening", "addr", srv.Addr, "issuer", cfg.Issuer)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
