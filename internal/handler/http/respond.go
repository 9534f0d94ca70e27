package http

import (
	"net/http"
	"strconv"

	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/internal/utils"
	"github.com/ValievMarat/advert-service/models"
	"github.com/go-chi/chi/v5"
)

// writeError translates err into the API error envelope. The mapping from
// sentinel errors to status codes and messages lives in errors_mapper.go.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Err(err).Send()
	}

	if _, writeErr := utils.WriteJSON(w, models.NewError(messageFromError(err)), status); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}

func writeBadJSON(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Msg("invalid JSON was passed")

	if _, writeErr := utils.WriteJSON(w, models.NewError("invalid JSON was passed"), http.StatusBadRequest); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}

// idParam extracts a positive numeric path parameter. Non-numeric values do
// not address any resource, so the caller reports "not found" rather than
// "bad request".
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
