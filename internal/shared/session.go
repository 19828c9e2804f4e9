// Package shared holds cross-cutting session plumbing for the HTTP layer.
package shared

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grandassist/shopfront/internal/cart"
)

// Session is one browsing session: its cart and the admin gate flag.
// All session state is process-local and lost on restart.
type Session struct {
	ID   string
	Cart *cart.Cart

	mu      sync.Mutex
	admin   bool
	expires time.Time
}

// IsAdmin reports whether this session has passed the admin gate.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// SetAdmin records the result of the admin gate check.
func (s *Session) SetAdmin(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = ok
}

// SessionManager orchestrates cookie based sessions backed by an in-memory
// store.
type SessionManager struct {
	cookieName string
	ttl        time.Duration
	secure     bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(cookieName string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		sessions:   make(map[string]*Session),
	}
}

// Load returns the session referenced by the request cookie, creating a
// fresh one when the cookie is absent, unknown, or expired. The second
// return value reports whether the session is new and needs a cookie.
func (sm *SessionManager) Load(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(sm.cookieName)
	if err == nil {
		sm.mu.Lock()
		sess, ok := sm.sessions[cookie.Value]
		sm.mu.Unlock()
		if ok && time.Now().Before(sess.expires) {
			return sess, false
		}
	}
	return sm.create(), true
}

func (sm *SessionManager) create() *Session {
	sess := &Session{
		ID:      uuid.NewString(),
		Cart:    cart.New(),
		expires: time.Now().Add(sm.ttl),
	}
	sm.mu.Lock()
	sm.pruneLocked()
	sm.sessions[sess.ID] = sess
	sm.mu.Unlock()
	return sess
}

// pruneLocked drops expired sessions. Caller holds sm.mu.
func (sm *SessionManager) pruneLocked() {
	now := time.Now()
	for id, sess := range sm.sessions {
		if now.After(sess.expires) {
			delete(sm.sessions, id)
		}
	}
}

// Middleware loads or creates the request session, stores it in the
// request context, and sets the session cookie when needed.
func (sm *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, isNew := sm.Load(r)
		if isNew {
			http.SetCookie(w, &http.Cookie{
				Name:     sm.cookieName,
				Value:    sess.ID,
				Path:     "/",
				Expires:  time.Now().Add(sm.ttl),
				HttpOnly: true,
				Secure:   sm.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
	})
}

type sessionCtxKey struct{}

// ContextWithSession stores a session in the context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sess)
}

// SessionFromContext retrieves the request session, or nil.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return sess
}
