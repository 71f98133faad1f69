package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
	handler "github.com/rogerio-castellano/sales-console/internal/http/handlers"
	mw "github.com/rogerio-castellano/sales-console/internal/http/middleware"
)

func TestLoginHandler_OpensSession(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	c := setup(t, newBackend(t, map[string]http.HandlerFunc{
		"POST /auth/login": jsonReply(200, `{"access_token":"`+token+`","token_type":"bearer"}`),
	}))

	w := c.do(http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "admin"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.SessionID == "" || resp.Subject != "admin" {
		t.Errorf("unexpected login result %+v", resp)
	}

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == mw.CookieName {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != resp.SessionID || !cookie.HttpOnly {
		t.Fatalf("expected an HttpOnly session cookie, got %+v", cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	var sess handler.SessionResult
	json.NewDecoder(rr.Body).Decode(&sess)
	if !sess.Authenticated || sess.Subject != "admin" {
		t.Errorf("expected authenticated session for admin, got %+v", sess)
	}
}

func TestLoginHandler_Failures(t *testing.T) {
	tests := []struct {
		name      string
		reply     http.HandlerFunc
		creds     handler.CredentialsRequest
		wantCode  int
		wantKind  apierr.Kind
		wantCalls int
	}{
		{
			name:      "missing token",
			reply:     jsonReply(200, `{"token_type":"bearer"}`),
			creds:     handler.CredentialsRequest{Username: "admin", Password: "admin"},
			wantCode:  http.StatusUnauthorized,
			wantKind:  apierr.KindAuthentication,
			wantCalls: 1,
		},
		{
			name:      "bad credentials",
			reply:     jsonReply(401, `{"error":"Invalid credentials"}`),
			creds:     handler.CredentialsRequest{Username: "admin", Password: "nope"},
			wantCode:  http.StatusUnauthorized,
			wantKind:  apierr.KindAuthentication,
			wantCalls: 1,
		},
		{
			name:      "empty credentials",
			reply:     jsonReply(200, `{}`),
			creds:     handler.CredentialsRequest{},
			wantCode:  http.StatusBadRequest,
			wantKind:  apierr.KindValidation,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setup(t, newBackend(t, map[string]http.HandlerFunc{"POST /auth/login": tt.reply}))

			w := c.do(http.MethodPost, "/login", "", tt.creds)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			resp := decodeError(t, w)
			if resp.Error.Kind != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, resp.Error.Kind)
			}
			if got := len(c.backend.Calls()); got != tt.wantCalls {
				t.Errorf("expected %d collaborator calls, got %d", tt.wantCalls, got)
			}
			if w.Header().Get("Set-Cookie") != "" {
				t.Error("no session cookie expected on failure")
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	c := setup(t, newBackend(t, nil))
	sid := c.login(t, "tok")

	w := c.do(http.MethodPost, "/logout", sid, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Errorf("expected the cookie to be cleared, got %q", w.Header().Get("Set-Cookie"))
	}

	w = c.do(http.MethodGet, "/session", sid, nil)
	var sess handler.SessionResult
	json.NewDecoder(w.Body).Decode(&sess)
	if sess.Authenticated {
		t.Error("expected the session to be gone after logout")
	}
}

func TestGetUsersHandler(t *testing.T) {
	c := setup(t, newBackend(t, nil))

	w := c.do(http.MethodGet, "/users", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", w.Code)
	}

	w = c.do(http.MethodGet, "/users", c.login(t, "tok"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var users []handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&users); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(users) != 2 || users[0].Login != "admin" {
		t.Fatalf("unexpected users %+v", users)
	}
	for _, u := range users {
		if u.Password != "••••••••" {
			t.Errorf("expected masked password, got %q", u.Password)
		}
	}
}
