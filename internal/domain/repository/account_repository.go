// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert collides with the unique
	// email index. The index is the second line of defense behind the
	// service-level pre-check for concurrent same-email registrations.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// Create persists a new account with its password hash. The store assigns
	// the ID and creation timestamp; both are written back into the entity.
	Create(ctx context.Context, account *entity.Account, passwordHash string) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindCredentialByEmail retrieves the verification credential for an email.
	// This is the only read that exposes the password hash.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
