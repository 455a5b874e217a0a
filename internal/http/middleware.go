package httpapi

import (
	"context"
	"net/http"

	"facility-monitor/internal/service"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFromContext returns the authenticated principal attached by
// the auth middleware.
func PrincipalFromContext(ctx context.Context) (*service.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*service.Principal)
	return p, ok
}

// RequireSession redirects anonymous requests to the login screen.
func (s *Sessions) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.Principal(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), principalKey, p)))
	}
}

// RequireSuperuser redirects anonymous requests to login and denies
// authenticated non-superusers outright (never a silent read-only view).
func (s *Sessions) RequireSuperuser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.Principal(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		if !p.IsSuperuser {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), principalKey, p)))
	}
}
