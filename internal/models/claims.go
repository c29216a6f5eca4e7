package models

import "github.com/golang-jwt/jwt/v5"

// CustomerClaims are the JWT claims issued at login and validated by the
// auth middleware on every protected route.
type CustomerClaims struct {
	jwt.RegisteredClaims
	CustomerID uint   `json:"customer_id"`
	Email      string `json:"email"`
}
