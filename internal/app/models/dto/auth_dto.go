package dto

import "time"

// TokenRequest represents a token issuance request. Claims are asserted by
// the caller; issuance does not authorize them.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"sam@melodica.app"`
	Role  string `json:"role,omitempty" example:"STUDENT"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-04-23T13:01:05Z"`
}
