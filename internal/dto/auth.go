package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string   `json:"user_id"`
	Roles     []string `json:"roles"`
	TokenType string   `json:"token_type"`
	jwt.RegisteredClaims
}

// RegisterRequest
// @Description Request body for account registration
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// LoginRequest
// @Description Request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse
// @Description Result of a successful login or registration
type AuthResponse struct {
	Message     string     `json:"message"`
	User        UserOutput `json:"user"`
	AccessToken string     `json:"access_token,omitempty"`
	ExpiresIn   int64      `json:"expires_in,omitempty"`
}
