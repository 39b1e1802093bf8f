package common

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/matst80/craft-finder/pkg/types"
)

const sessionCookieName = "sid"

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionId,
		Domain:   strings.TrimPrefix(hostWithoutPort(r.Host), "."),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30,
		Path:     "/",
	})
}

func hostWithoutPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// HandleSessionCookie returns the session id of the request, issuing a new
// one (and tracking the new session) when the cookie is missing or malformed.
func HandleSessionCookie(trk types.Tracking, w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err == nil {
		if id, parseErr := uuid.Parse(c.Value); parseErr == nil {
			return id.String()
		}
	}
	sessionId := uuid.NewString()
	if trk != nil {
		go trk.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
