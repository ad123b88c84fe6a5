package api

import (
	"context"
	"net/http"

	"github.com/sankofa-labs/sankofa/internal/conversation"
)

const sessionCookieName = "sankofa_session"

type contextKey int

const sessionContextKey contextKey = iota

// sessionMiddleware assigns a session cookie on first contact and puts
// the session ID on the request context for the handlers.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sid string
		if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
			sid = c.Value
		} else {
			sid = conversation.NewSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionContextKey).(string)
	return sid
}
