package auth

import (
	"testing"
	"time"

	"github.com/devansh/hostelhub/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test-issuer",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Minute)

	user := &models.User{ID: 42, Role: models.RoleStudent}
	token, expiresIn, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if expiresIn != 60 {
		t.Fatalf("expected expiresIn 60, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "test-issuer" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateAccessToken(&models.User{ID: 1, Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Minute).GenerateAccessToken(&models.User{ID: 1, Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatalf("expected validation failure with wrong secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := ExtractBearerToken(""); err == nil {
		t.Fatalf("expected error for empty header")
	}
}
