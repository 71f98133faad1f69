package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Slot is the name of the single value kept per session.
const Slot = "access_token"

var ErrNotFound = errors.New("session not found")

// Session carries the bearer token of one logged-in operator. It is created at login,
// passed explicitly to every collaborator call, and destroyed at logout.
type Session struct {
	id    string
	token string
}

// Anonymous is the session used when a request carries no session id.
var Anonymous = Session{}

// New builds a session value without persisting it. Tests and the client use it directly.
func New(id, token string) Session {
	return Session{id: id, token: token}
}

func (s Session) ID() string    { return s.id }
func (s Session) Token() string { return s.token }

func (s Session) Authenticated() bool {
	return s.token != ""
}

// Subject reads the "sub" claim when the token happens to be a JWT. The signature is not
// checked: the console never trusts the claim, it only displays it.
func (s Session) Subject() string {
	if s.token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Store keeps the access token slot for each session id.
type Store interface {
	Get(ctx context.Context, id string) (string, bool, error)
	Set(ctx context.Context, id, token string) error
	Clear(ctx context.Context, id string) error
}

// Manager owns the session lifecycle on top of a Store.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Begin creates a session for a freshly issued token.
func (m *Manager) Begin(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Anonymous, errors.New("empty token")
	}
	id := uuid.NewString()
	if err := m.store.Set(ctx, id, token); err != nil {
		return Anonymous, fmt.Errorf("failed to store session: %w", err)
	}
	return New(id, token), nil
}

// Resume loads the session stored under id.
func (m *Manager) Resume(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Anonymous, ErrNotFound
	}
	token, ok, err := m.store.Get(ctx, id)
	if err != nil {
		return Anonymous, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return Anonymous, ErrNotFound
	}
	return New(id, token), nil
}

// End destroys the session. Ending an unknown session is not an error.
func (m *Manager) End(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := m.store.Clear(ctx, id); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

type contextKey string

const sessionKey = contextKey("session")

// WithContext stores s in ctx for handlers further down the chain.
func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the request's session, Anonymous when none was attached.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(sessionKey).(Session); ok {
		return s
	}
	return Anonymous
}
