package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	rl "github.com/rogerio-castellano/sales-console/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

func echoSession(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(session.FromContext(r.Context()).Token()))
}

func TestSession(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore())
	sess, err := m.Begin(context.Background(), "tok-1")
	if err != nil {
		t.Fatal(err)
	}
	h := Session(m, zap.NewNop())(http.HandlerFunc(echoSession))

	tests := []struct {
		name      string
		setup     func(r *http.Request)
		wantToken string
	}{
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: sess.ID()}) }, "tok-1"},
		{"header", func(r *http.Request) { r.Header.Set(HeaderName, sess.ID()) }, "tok-1"},
		{"unknown id", func(r *http.Request) { r.Header.Set(HeaderName, "nope") }, ""},
		{"none", func(r *http.Request) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
			if rr.Body.String() != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, rr.Body.String())
			}
		})
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("down")
}
func (brokenStore) Set(context.Context, string, string) error { return nil }
func (brokenStore) Clear(context.Context, string) error       { return nil }

func TestSession_StoreFailure(t *testing.T) {
	h := Session(session.NewManager(brokenStore{}), zap.NewNop())(http.HandlerFunc(echoSession))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, "abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestRequireSession(t *testing.T) {
	h := RequireSession(http.HandlerFunc(echoSession))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(session.WithContext(req.Context(), session.New("id", "tok")))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200 with session, got %d", rr.Code)
	}
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(rl.New(0.001, 1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := []int{}
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("expected [200 429], got %v", codes)
	}
}

func TestRequestLogger(t *testing.T) {
	h := RequestLogger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status to pass through, got %d", rr.Code)
	}
}
