package jwt_generator

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

const IssuerDefault = "payout-api"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrInvalidToken = errors.New("invalid jwt token")
	ErrExpiredToken = errors.New("expired jwt token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
