package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/memehoueibib/securecode-platform-sub001/internal/app"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/utils"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Str("role", string(registeredUser.Role)).Msg("user registered")
	h.respondWithToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.respondWithToken(w, r, foundUser)
}

// respondWithToken puts a fresh bearer token in the Authorization header and
// the public part of user in the body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user.Password = ""
	user.PasswordHash = ""

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user, http.StatusOK)
}
