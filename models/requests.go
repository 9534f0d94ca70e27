package models

// CreateUserRequest is the body of POST /users/.
// Password arrives as plaintext and is hashed before it reaches the store.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Mail     string `json:"mail"`
}

// AdvertMutationRequest is the body of POST /adverts/ and PATCH /adverts/{id}/.
// User and Password are the owner credentials checked by the authorization
// gate before the mutation is applied.
type AdvertMutationRequest struct {
	Caption     string `json:"caption"`
	Description string `json:"description"`
	User        string `json:"user"`
	Password    string `json:"password"`
}

// AdvertDeleteRequest is the body of DELETE /adverts/{id}/.
type AdvertDeleteRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}
