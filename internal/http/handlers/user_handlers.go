package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

// GetUsersHandler godoc
// @Summary User directory
// @Description Passwords are never shown.
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 401 {string} string "Login required"
// @Failure 500 {string} string "Internal error"
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll(r.Context())
	if err != nil {
		logger.Error("could not load users", zap.Error(err))
		http.Error(w, "failed to fetch users", http.StatusInternalServerError)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{User: u, Password: models.MaskedPassword})
	}
	respond(w, http.StatusOK, out)
}
