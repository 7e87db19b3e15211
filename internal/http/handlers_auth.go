package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/ports"
)

// AuthServiceInterface defines the auth operations used by the HTTP layer.
type AuthServiceInterface interface {
	SessionResolver
	Login(ctx context.Context, in ports.LoginInput) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for session operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Logger *slog.Logger
}

type loginRequest struct {
	UserID string          `json:"user_id"`
	Role   domainauth.Role `json:"role,omitempty"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token     string          `json:"token"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"display_name"`
	Role      domainauth.Role `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Login exchanges identity credentials for a session.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Svc.Login(r.Context(), ports.LoginInput{UserID: req.UserID, Role: req.Role})
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	WriteJSON(w, http.StatusCreated, LoginResponse{
		Token:     sess.ID,
		UserID:    sess.UserID,
		Name:      sess.DisplayName,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout ends the caller's session.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.Svc.Logout(r.Context(), token); err != nil {
			WriteServiceError(w, r, h.Logger, err)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated session.
// GET /api/auth/me.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	sess, _ := GetUserSessionFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"user_id":      sess.UserID,
		"display_name": sess.DisplayName,
		"role":         sess.Role,
	})
}
