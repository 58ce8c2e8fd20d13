package dto

// TokenRequest identity payload for token issuance.
type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse signed credential returned by POST /jwt. The same token is
// also set as an HTTP-only cookie.
type TokenResponse struct {
	Token string `json:"token"`
}
