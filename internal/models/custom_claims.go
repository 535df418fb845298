package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims extends the registered JWT claims with the identity fields
// the API needs on every authenticated request. TokenType distinguishes
// access from refresh tokens so neither can stand in for the other.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	TokenType string `json:"token_type"`
}
