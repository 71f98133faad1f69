package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
	"github.com/rogerio-castellano/sales-console/internal/client"
	mw "github.com/rogerio-castellano/sales-console/internal/http/middleware"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// LoginHandler godoc
// @Summary Log in through the commercial service and open a console session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		writeError(w, apierr.Validation(apierr.FieldError{Field: "username", Description: "Please fill in all required fields"}), "")
		return
	}

	token, err := services.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err, client.CommercialService)
		return
	}

	sess, err := sessions.Begin(r.Context(), token)
	if err != nil {
		logger.Error("could not open session", zap.Error(err))
		http.Error(w, "could not open session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.CookieName,
		Value:    sess.ID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	logger.Info("session opened", zap.String("subject", sess.Subject()))
	respond(w, http.StatusOK, LoginResult{SessionID: sess.ID(), TokenType: "Bearer", Subject: sess.Subject()})
}

// LogoutHandler godoc
// @Summary Close the console session
// @Tags auth
// @Success 204
// @Failure 500 {string} string "Internal error"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := sessions.End(r.Context(), mw.SessionID(r)); err != nil {
		logger.Error("could not close session", zap.Error(err))
		http.Error(w, "could not close session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     mw.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// SessionHandler godoc
// @Summary Describe the caller's session
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResult
// @Router /session [get]
func SessionHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	respond(w, http.StatusOK, SessionResult{Authenticated: sess.Authenticated(), Subject: sess.Subject()})
}
