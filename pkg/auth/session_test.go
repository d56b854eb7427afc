package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testSecret() []byte {
	return SessionSecretBytes("test-secret")
}

func TestCreateAndVerifySessionToken(t *testing.T) {
	token, err := CreateSessionToken("admin@portfolio.com", testSecret())
	if err != nil {
		t.Fatalf("CreateSessionToken failed: %v", err)
	}

	email, err := VerifySessionToken(token, testSecret())
	if err != nil {
		t.Fatalf("VerifySessionToken failed: %v", err)
	}
	if email != "admin@portfolio.com" {
		t.Errorf("expected admin@portfolio.com, got %q", email)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := CreateSessionToken("admin@portfolio.com", testSecret())
	if err != nil {
		t.Fatalf("CreateSessionToken failed: %v", err)
	}

	_, err = VerifySessionToken(token, SessionSecretBytes("other-secret"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	_, err := VerifySessionToken("not-a-token", testSecret())
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@portfolio.com",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString(testSecret())
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = VerifySessionToken(tokenString, testSecret())
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifySessionToken_MissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := token.SignedString(testSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = VerifySessionToken(tokenString, testSecret())
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionCookie_Attributes(t *testing.T) {
	c := SessionCookie("token-value", true)
	if c.Name != SessionCookieName() {
		t.Errorf("unexpected cookie name %q", c.Name)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if !c.Secure {
		t.Error("expected Secure cookie")
	}
	if c.MaxAge != 3600 {
		t.Errorf("expected MaxAge 3600, got %d", c.MaxAge)
	}
}

func TestClearSessionCookie_Expires(t *testing.T) {
	c := ClearSessionCookie()
	if c.MaxAge != -1 {
		t.Errorf("expected MaxAge -1, got %d", c.MaxAge)
	}
	if c.Value != "" {
		t.Errorf("expected empty value, got %q", c.Value)
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) != minSecretLen {
		t.Errorf("expected %d bytes, got %d", minSecretLen, len(b))
	}
}
