package http

import (
	"encoding/json"
	"net/http"

	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/internal/store"
	"github.com/ValievMarat/advert-service/internal/utils"
	"github.com/ValievMarat/advert-service/models"
)

func (h *Handler) createAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AdvertMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	createdAdvert, err := h.services.AdvertService.Create(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("advert_id", createdAdvert.AdvertID).Msg("advert created")

	response := models.AdvertCreatedResponse{
		ID:      createdAdvert.AdvertID,
		Caption: createdAdvert.Caption,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	advertID, ok := idParam(r, "advertID")
	if !ok {
		writeError(w, r, store.ErrAdvertNotFound)
		return
	}

	foundAdvert, err := h.services.AdvertService.Get(ctx, advertID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.AdvertResponse{
		ID:          foundAdvert.AdvertID,
		Caption:     foundAdvert.Caption,
		Description: foundAdvert.Description,
		CreatedAt:   foundAdvert.CreatedAt,
		OwnerID:     foundAdvert.OwnerID,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	advertID, ok := idParam(r, "advertID")
	if !ok {
		writeError(w, r, store.ErrAdvertNotFound)
		return
	}

	var request models.AdvertMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	if err := h.services.AdvertService.Update(ctx, advertID, request); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.NewStatusSuccess(), http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	advertID, ok := idParam(r, "advertID")
	if !ok {
		writeError(w, r, store.ErrAdvertNotFound)
		return
	}

	var request models.AdvertDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	if err := h.services.AdvertService.Delete(ctx, advertID, request); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.NewStatusSuccess(), http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
