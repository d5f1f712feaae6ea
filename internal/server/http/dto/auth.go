package dto

// RegisterRequest describes the sign-up payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	JWTToken string `json:"jwtToken"`
}

// MessageResponse is the envelope for plain outcomes and every error.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
