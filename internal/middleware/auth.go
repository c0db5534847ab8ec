package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/mattlaska/zoznamy/internal/auth"
	"github.com/mattlaska/zoznamy/internal/store"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "zoznamy_session"

// RequireAuth resolves the session cookie to a live session and stores it in
// the request context. Anything without a valid session gets a 401 and no
// partial data; the client is expected to send the caller back to /login.
func RequireAuth(sessions *store.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			sess, err := sessions.GetByToken(cookie.Value)
			if err != nil || sess == nil {
				unauthorized(w)
				return
			}

			ctx := auth.WithSession(r.Context(), auth.Session{
				SessionID: sess.ID,
				Token:     sess.Token,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
