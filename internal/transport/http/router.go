package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"passwordreset/internal/domain"
	"passwordreset/internal/dto"
	"passwordreset/internal/observability/metrics"
	"passwordreset/internal/observability/middleware"
	"passwordreset/internal/service"
	"passwordreset/internal/service/impl"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const banner = "Welcome to the password reset flow API"

// NewRouter wires every endpoint. Handlers only decode, call a service, and
// map outcomes to status/body; no handler talks to another handler.
func NewRouter(auth service.AuthService, reset service.ResetService) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(httprate.LimitByIP(100, 1*time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.WithRequestAndTrace)
	r.Use(middleware.WithMetrics)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(banner))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var req dto.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "All fields are required"})
			return
		}
		if err := auth.Register(r.Context(), req); err != nil {
			metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
			switch {
			case errors.Is(err, impl.ErrEmptyFields):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "All fields are required"})
			case errors.Is(err, domain.ErrPasswordMismatch):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Passwords do not match"})
			default:
				writeInternalError(w, r, "registration failed", err)
			}
			return
		}
		metrics.RegistrationsTotal.WithLabelValues("success").Inc()
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "User registered successfully"})
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Username and password are required"})
			return
		}
		res, err := auth.Login(r.Context(), req)
		if err != nil {
			// Unknown email and wrong password answer 200 with a message
			// body, not an error status; observed behavior, kept as-is.
			switch {
			case errors.Is(err, impl.ErrEmptyFields):
				metrics.LoginsTotal.WithLabelValues("failure").Inc()
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Username and password are required"})
			case errors.Is(err, domain.ErrUserNotFound):
				metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
				writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "User not found"})
			case errors.Is(err, domain.ErrInvalidPassword):
				metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
				writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Password Incorrect"})
			default:
				metrics.LoginsTotal.WithLabelValues("failure").Inc()
				writeInternalError(w, r, "login failed", err)
			}
			return
		}
		metrics.LoginsTotal.WithLabelValues("success").Inc()
		writeJSON(w, http.StatusOK, res)
	})

	r.Post("/sendmail", func(w http.ResponseWriter, r *http.Request) {
		var req dto.SendMailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "User not found"})
			return
		}
		if err := reset.IssueCode(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, impl.ErrEmptyEmail), errors.Is(err, domain.ErrUserNotFound):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "User not found"})
			case errors.Is(err, domain.ErrCodeUndelivered):
				// The code is persisted and valid; only delivery failed.
				slog.Warn("verification code undelivered",
					"error", err,
					"request_id", middleware.RequestIDFromContext(r.Context()),
					"trace_id", middleware.TraceIDFromContext(r.Context()),
				)
				writeJSON(w, http.StatusBadGateway, dto.MessageResponse{Message: "Verification code issued but email delivery failed"})
			default:
				writeInternalError(w, r, "code issuance failed", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Email sent"})
	})

	r.Post("/verify", func(w http.ResponseWriter, r *http.Request) {
		var req dto.VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Email and verification code are required"})
			return
		}
		user, err := reset.VerifyCode(r.Context(), req.Email, req.VerCode.String())
		if err != nil {
			switch {
			case errors.Is(err, impl.ErrEmptyFields):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Email and verification code are required"})
			case errors.Is(err, domain.ErrUserNotFound):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "User not found"})
			case errors.Is(err, domain.ErrNoCodePending), errors.Is(err, domain.ErrCodeMismatch):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid Verification Code"})
			default:
				writeInternalError(w, r, "verification failed", err)
			}
			return
		}
		// The record is returned exactly as stored, hash included; a known
		// exposure of the observed design, kept as-is.
		writeJSON(w, http.StatusOK, dto.VerifyResponse{Message: "Verification successful", User: user})
	})

	r.Post("/changepassword/{id}", func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "id")
		var req dto.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Email and passwords are required"})
			return
		}
		if err := auth.ChangePassword(r.Context(), email, req); err != nil {
			switch {
			case errors.Is(err, impl.ErrEmptyFields):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Email and passwords are required"})
			case errors.Is(err, domain.ErrPasswordMismatch):
				writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Passwords do not match"})
			default:
				writeInternalError(w, r, "password update failed", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeInternalError logs the real cause server-side and answers with the
// generic body; clients never see internal detail.
func writeInternalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"trace_id", middleware.TraceIDFromContext(r.Context()),
	)
	writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{Message: "Internal Server Error"})
}
