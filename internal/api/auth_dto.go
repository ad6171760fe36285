package api

// TokenRequest is the payload for POST /v1/auth/token.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
