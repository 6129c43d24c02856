package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims for a calling service
type Claims struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}
