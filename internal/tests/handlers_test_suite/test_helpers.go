package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/sales-console/internal/client"
	handler "github.com/rogerio-castellano/sales-console/internal/http/handlers"
	mw "github.com/rogerio-castellano/sales-console/internal/http/middleware"
	"github.com/rogerio-castellano/sales-console/internal/http/router"
	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/repo"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

var fixedNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

// backend fakes the three collaborator services behind one server. Routes use
// ServeMux patterns such as "GET /api/stock/produits".
type backend struct {
	srv *httptest.Server

	mu    sync.Mutex
	calls []string
	auth  []string
}

func (b *backend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, r.Method+" "+r.URL.Path)
	b.auth = append(b.auth, r.Header.Get("Authorization"))
}

func (b *backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *backend) Auth() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.auth...)
}

func newBackend(t *testing.T, routes map[string]http.HandlerFunc) *backend {
	t.Helper()
	b := &backend{}
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

type console struct {
	handler  http.Handler
	backend  *backend
	sessions *session.Manager
}

// setup wires the handlers against b. endpoints may redirect individual services.
func setup(t *testing.T, b *backend, endpoints ...func(*client.Endpoints)) *console {
	t.Helper()
	e := client.Endpoints{Commercial: b.srv.URL, Stock: b.srv.URL, Sale: b.srv.URL}
	for _, f := range endpoints {
		f(&e)
	}

	sessions := session.NewManager(session.NewMemoryStore())
	handler.SetServices(client.NewServices(client.New(b.srv.Client(), nil), e))
	handler.SetSessionManager(sessions)
	handler.SetUserRepo(repo.NewInMemoryUserRepository([]models.User{{ID: 1, Login: "admin", Role: "Administrator"}, {ID: 2, Login: "john_doe", Role: "Salesperson"}}))
	handler.SetClock(func() time.Time { return fixedNow })
	t.Cleanup(func() { handler.SetClock(nil) })

	return &console{
		handler:  router.NewRouter(router.Options{Sessions: sessions}),
		backend:  b,
		sessions: sessions,
	}
}

// login opens a session directly in the store and returns its id.
func (c *console) login(t *testing.T, token string) string {
	t.Helper()
	sess, err := c.sessions.Begin(context.Background(), token)
	if err != nil {
		t.Fatalf("could not open session: %v", err)
	}
	return sess.ID()
}

func (c *console) do(method, path, sessionID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(mw.HeaderName, sessionID)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding error response: %v", err)
	}
	return resp
}
