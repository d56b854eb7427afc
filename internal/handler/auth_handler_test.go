package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	loginFunc func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return "", service.ErrInvalidCredentials
}

func (m *mockAuthService) SetCredential(ctx context.Context, email, password string) error {
	return nil
}

var handlerTestSecret = auth.SessionSecretBytes("handler-test-secret")

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName() {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	token, err := auth.CreateSessionToken("admin@portfolio.com", handlerTestSecret)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return token, nil
		},
	}
	h := NewAuthHandler(mock, handlerTestSecret, false)

	body := `{"email":"admin@portfolio.com","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.User.Email != "admin@portfolio.com" {
		t.Errorf("unexpected response: %+v", resp)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if cookie.Value != token {
		t.Error("cookie does not carry the minted token")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Error("session cookie must be SameSite=Strict")
	}
	if cookie.MaxAge != 3600 {
		t.Errorf("expected MaxAge 3600, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock, handlerTestSecret, false)

	body := `{"email":"admin@portfolio.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if sessionCookieFrom(rec) != nil {
		t.Error("no session cookie may be set on failed login")
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Invalid email or password" {
		t.Errorf("expected uniform credential error, got %q", resp["error"])
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock, handlerTestSecret, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// Storage failures surface as 500, not as a credential error.
func TestAuthHandler_Login_StorageError(t *testing.T) {
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	h := NewAuthHandler(mock, handlerTestSecret, false)

	body := `{"email":"admin@portfolio.com","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestAuthHandler_Verify_ValidSession(t *testing.T) {
	token, err := auth.CreateSessionToken("admin@portfolio.com", handlerTestSecret)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	h := NewAuthHandler(&mockAuthService{}, handlerTestSecret, false)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: token})
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp verifyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Authenticated || resp.User == nil || resp.User.Email != "admin@portfolio.com" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Verify_NoCookie(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, handlerTestSecret, false)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	var resp verifyResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Authenticated {
		t.Error("expected authenticated=false")
	}
}

func TestAuthHandler_Verify_TamperedToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, handlerTestSecret, false)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: "tampered"})
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, handlerTestSecret, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatal("expected clearing cookie to be set")
	}
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Errorf("expected expired empty cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

// Logout without an existing session still succeeds.
func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, handlerTestSecret, false)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("logout %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}
