package services

import (
	"net/http"

	"Reelrank/config"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie the session store signs with the secret key.
const SessionName = "reelrank-session"

func NewSessionStore(cfg *config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
