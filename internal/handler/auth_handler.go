package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// AuthHandler serves login, session verification and logout.
type AuthHandler struct {
	authService   service.AuthService
	sessionSecret []byte
	secureCookies bool
}

// NewAuthHandler creates an AuthHandler. secureCookies should be true
// in production so the session cookie is never sent over plain HTTP.
func NewAuthHandler(authService service.AuthService, sessionSecret []byte, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    userPayload `json:"user"`
}

// Login handles POST /api/auth/login. Credential mismatches return a
// uniform 401 with no hint about which factor was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	http.SetCookie(w, auth.SessionCookie(token, h.secureCookies))
	writeJSON(w, http.StatusOK, loginResponse{Success: true, User: userPayload{Email: req.Email}})
}

type verifyResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *userPayload `json:"user,omitempty"`
}

// Verify handles GET /api/auth/verify. It answers whether the request
// carries a currently valid session.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, verifyResponse{Authenticated: false})
		return
	}

	email, err := auth.VerifySessionToken(cookie.Value, h.sessionSecret)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, verifyResponse{Authenticated: false})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Authenticated: true,
		User:          &userPayload{Email: email},
	})
}

// Logout handles POST /api/auth/logout. Idempotent: clearing an absent
// session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearSessionCookie())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
