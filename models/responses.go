package models

import "time"

// Response envelopes for every endpoint. Field names are part of the wire
// contract and must not change: clients key on them.

// UserCreatedResponse is the body of a successful POST /users/.
type UserCreatedResponse struct {
	ID int64 `json:"id"`
}

// UserResponse is the body of a successful GET /users/{id}/.
// The password hash is intentionally absent.
type UserResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AdvertCreatedResponse is the body of a successful POST /adverts/.
type AdvertCreatedResponse struct {
	ID      int64  `json:"id"`
	Caption string `json:"caption"`
}

// AdvertResponse is the body of a successful GET /adverts/{id}/.
type AdvertResponse struct {
	ID          int64     `json:"id"`
	Caption     string    `json:"caption"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     int64     `json:"owner_id"`
}

// StatusResponse is the body of every successful PATCH and DELETE.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewStatusSuccess returns the canonical success envelope.
func NewStatusSuccess() StatusResponse {
	return StatusResponse{Status: "success"}
}

// NewError returns the canonical error envelope with the given message.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}
