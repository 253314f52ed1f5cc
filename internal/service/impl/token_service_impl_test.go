package impl

import (
	"testing"
	"time"

	"passwordreset/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestIssueEncodesIdentity(t *testing.T) {
	key := []byte("unit-test-secret")
	ts := NewTokenServiceHS256(TokenConfig{Issuer: "passwordreset", SigningKey: key})

	user := &domain.User{
		ID:        uuid.New(),
		Email:     "a@x.com",
		Username:  "a",
		CreatedAt: time.Now().UTC(),
	}

	signed, err := ts.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := &SessionClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tok.Valid {
		t.Fatalf("token should be valid")
	}

	if claims.Subject != user.ID.String() {
		t.Fatalf("subject = %q, want user id %q", claims.Subject, user.ID)
	}
	if claims.Email != "a@x.com" || claims.Name != "a" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if claims.Issuer != "passwordreset" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
	// Tokens carry no expiry; a documented gap of this service, asserted so
	// a change here is deliberate.
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no exp claim, got %v", claims.ExpiresAt)
	}
}

func TestIssueRejectsTamperedToken(t *testing.T) {
	ts := NewTokenServiceHS256(TokenConfig{Issuer: "passwordreset", SigningKey: []byte("key-one")})

	signed, err := ts.Issue(&domain.User{ID: uuid.New(), Email: "b@x.com", Username: "b"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err = parser.ParseWithClaims(signed, &SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("other-key"), nil
	})
	if err == nil {
		t.Fatalf("parsing with the wrong key should fail")
	}
}

func TestIssueWithoutKeyFails(t *testing.T) {
	ts := NewTokenServiceHS256(TokenConfig{Issuer: "passwordreset"})
	if _, err := ts.Issue(&domain.User{ID: uuid.New()}); err == nil {
		t.Fatalf("expected an error without a signing key")
	}
}
