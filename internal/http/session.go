package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"facility-monitor/internal/service"
	"facility-monitor/internal/store"

	"github.com/google/uuid"
)

// SessionCookieName carries the opaque session token.
const SessionCookieName = "fm_session"

const sessionKeyPrefix = "session:"

// Sessions resolves cookie tokens to principals through the KV store
// (redis in normal operation, MemoryKV in dev/tests).
type Sessions struct {
	kv  store.KV
	ttl time.Duration
}

func NewSessions(kv store.KV, ttl time.Duration) *Sessions {
	return &Sessions{kv: kv, ttl: ttl}
}

// Create stores the principal under a fresh token and sets the cookie.
func (s *Sessions) Create(ctx context.Context, w http.ResponseWriter, p *service.Principal) error {
	token := uuid.NewString()
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, sessionKeyPrefix+token, string(payload), s.ttl); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return nil
}

// Principal resolves the request's session cookie. ok is false for
// anonymous requests, expired tokens and KV misses alike.
func (s *Sessions) Principal(r *http.Request) (*service.Principal, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	payload, err := s.kv.Get(r.Context(), sessionKeyPrefix+cookie.Value)
	if err != nil {
		return nil, false
	}
	var p service.Principal
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// Destroy deletes the session key and expires the cookie.
func (s *Sessions) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		_ = s.kv.Del(ctx, sessionKeyPrefix+cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
