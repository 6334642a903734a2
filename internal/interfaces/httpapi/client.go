package httpapi

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/platform/id"
)

const (
	clientIDHeader   = "X-Client-ID"
	clientCookieName = "pl_client"
	clientCookieAge  = 365 * 24 * time.Hour
	maxClientIDLen   = 128
)

// resolveClientID reads the client id from the header, then the cookie.
// Malformed values are treated as absent.
func resolveClientID(r *http.Request) (string, bool) {
	if value := normalizeClientID(r.Header.Get(clientIDHeader)); value != "" {
		return value, true
	}
	if cookie, err := r.Cookie(clientCookieName); err == nil {
		if value := normalizeClientID(cookie.Value); value != "" {
			return value, true
		}
	}
	return "", false
}

func normalizeClientID(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > maxClientIDLen {
		return ""
	}
	if id.Valid(value) {
		return strings.ToLower(value)
	}
	for _, r := range value {
		if !isClientIDRune(r) {
			return ""
		}
	}
	return value
}

func isClientIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.':
		return true
	default:
		return false
	}
}

func newClientCookie(clientID string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     clientCookieName,
		Value:    clientID,
		Path:     "/",
		MaxAge:   int(clientCookieAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func resolveClientIP(r *http.Request) string {
	candidates := []string{
		r.Header.Get("Fly-Client-IP"),
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	}

	for _, candidate := range candidates {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}

	return ""
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.Contains(value, ",") {
		value = strings.TrimSpace(strings.Split(value, ",")[0])
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
