package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Validation failure sentinels. Callers must be able to tell an expired token
// (the holder simply needs to log in again) from a forged or tampered one.
var (
	// ErrTokenExpired is returned when the token's signature is valid but its
	// expiry instant has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrSignatureInvalid is returned when the token fails integrity checks:
	// bad signature, wrong signing method, or a malformed payload.
	ErrSignatureInvalid = errors.New("token signature invalid")
)

// Claims defines the claim set carried by issued bearer tokens.
type Claims struct {
	AccountID uuid.UUID `json:"sub"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token binding the account identity, stamped with
	// the issue instant and the configured validity window.
	Issue(accountID uuid.UUID) (string, error)

	// Validate verifies signature integrity and expiry of a token string and
	// returns its claims. Fails with ErrTokenExpired or ErrSignatureInvalid.
	Validate(tokenString string) (*Claims, error)
}
