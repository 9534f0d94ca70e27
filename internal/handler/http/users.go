package http

import (
	"encoding/json"
	"net/http"

	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/internal/store"
	"github.com/ValievMarat/advert-service/internal/utils"
	"github.com/ValievMarat/advert-service/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", createdUser.UserID).Msg("user created")

	if _, err := utils.WriteJSON(w, models.UserCreatedResponse{ID: createdUser.UserID}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, r, store.ErrUserNotFound)
		return
	}

	foundUser, err := h.services.UserService.Get(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.UserResponse{
		ID:        foundUser.UserID,
		UserName:  foundUser.Username,
		CreatedAt: foundUser.CreatedAt,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, r, store.ErrUserNotFound)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	if err := h.services.UserService.Update(ctx, userID, update); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.NewStatusSuccess(), http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, r, store.ErrUserNotFound)
		return
	}

	if err := h.services.UserService.Delete(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.NewStatusSuccess(), http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
