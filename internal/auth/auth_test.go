package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("superadminpassword")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("superadminpassword", hash) {
		t.Fatalf("CheckPasswordHash rejected the correct password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("CheckPasswordHash accepted a wrong password")
	}
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	if err := Configure("test-secret", "1h"); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	tokenString, err := GenerateJWT("admin@pharmarapide.ma", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse generated token: %v (valid=%v)", err, token != nil && token.Valid)
	}
	if claims.Email != "admin@pharmarapide.ma" || claims.Role != "admin" {
		t.Fatalf("claims = %q/%q, want admin@pharmarapide.ma/admin", claims.Email, claims.Role)
	}
}

func TestConfigure_BadExpiration(t *testing.T) {
	if err := Configure("s", "not-a-duration"); err == nil {
		t.Fatalf("Configure must reject a malformed expiration")
	}
}

func TestIsAuthorizedAdmin(t *testing.T) {
	SetAuthorizedEmails([]string{" Admin@PharmaRapide.ma ", "second@pharmarapide.ma", ""})

	if !IsAuthorizedAdmin("admin@pharmarapide.ma") {
		t.Fatalf("allow-listed email rejected")
	}
	if !IsAuthorizedAdmin("ADMIN@pharmarapide.MA") {
		t.Fatalf("allow-list must be case-insensitive")
	}
	if IsAuthorizedAdmin("intruder@example.com") {
		t.Fatalf("unlisted email accepted")
	}
	if IsAuthorizedAdmin("") {
		t.Fatalf("empty email accepted")
	}

	if got := len(AuthorizedEmails()); got != 2 {
		t.Fatalf("AuthorizedEmails() has %d entries, want 2", got)
	}
}
