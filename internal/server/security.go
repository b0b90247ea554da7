package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to HTTP responses.
type SecurityConfig struct {
	// EnableCORS toggles CORS headers on responses.
	EnableCORS bool
	// AllowedOrigins lists origins allowed by CORS ("*" for any).
	AllowedOrigins []string
	// AllowedMethods lists HTTP methods allowed by CORS.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the default hardening configuration.
// The endpoint is read-only, so only GET and the CORS preflight are allowed.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps a handler with security headers and CORS support.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("X-Content-Type-Options", "nosniff")
		headers.Set("X-Frame-Options", "DENY")
		headers.Set("X-XSS-Protection", "1; mode=block")
		headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		headers.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			headers.Set("Access-Control-Allow-Origin", strings.Join(config.AllowedOrigins, ", "))
			headers.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}
