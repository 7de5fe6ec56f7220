// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account and its freshly issued bearer token.
// Registration and login share this shape.
type AuthOutput struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account and immediately issues a token for it.
	// A duplicate email fails with ErrEmailTaken.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the email/password pair and issues a token. An unknown
	// email and a wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
