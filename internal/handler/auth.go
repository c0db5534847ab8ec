package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mattlaska/zoznamy/internal/auth"
	"github.com/mattlaska/zoznamy/internal/middleware"
	"github.com/mattlaska/zoznamy/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const sessionMaxAge = 30 * 24 * 60 * 60 // seconds, matches the store's session TTL

// AuthHandler is the shared-passphrase gate. The configured passphrase is
// bcrypt-hashed once at startup; logins compare against the hash, so the
// comparison cost is constant regardless of how close a guess is.
type AuthHandler struct {
	sessions     *store.SessionStore
	passwordHash []byte
	logger       *slog.Logger
}

func NewAuthHandler(sessions *store.SessionStore, password string, logger *slog.Logger) (*AuthHandler, error) {
	if password == "" {
		return nil, fmt.Errorf("shared password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &AuthHandler{sessions: sessions, passwordHash: hash, logger: logger}, nil
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Password = strings.TrimSpace(req.Password)
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "password is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "incorrect password"})
		return
	}

	sess, err := h.sessions.Create()
	if err != nil {
		h.logger.Error("create session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create session"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := auth.FromContext(r.Context()); ok {
		if err := h.sessions.Delete(sess.SessionID); err != nil {
			h.logger.Error("delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
