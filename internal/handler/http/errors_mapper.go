package http

import (
	"errors"
	"net/http"

	"github.com/ValievMarat/advert-service/internal/service"
	"github.com/ValievMarat/advert-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrCaptionTooLong:      http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,

	store.ErrUsernameTaken:   http.StatusConflict,
	store.ErrOwnerMissing:    http.StatusConflict,
	store.ErrUserOwnsAdverts: http.StatusConflict,
	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrAdvertNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid data provided",
	service.ErrCaptionTooLong:      "caption is too long",
	service.ErrWrongPassword:       "incorrect password",

	store.ErrUsernameTaken:   "user already exists",
	store.ErrOwnerMissing:    "advert owner does not exist",
	store.ErrUserOwnsAdverts: "user still owns adverts",
	store.ErrUserNotFound:    "user not found",
	store.ErrAdvertNotFound:  "advert not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
