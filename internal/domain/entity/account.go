// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the registered identity behind every job posting. The identifier
// is assigned by the store on insert and never changes afterwards.
// The entity deliberately carries no password material; the hash lives only in
// the persistence layer and is surfaced through Credential for verification.
type Account struct {
	ID        uuid.UUID // Store-assigned unique identifier, immutable after insert.
	Name      string    // Display name supplied at registration.
	Email     string    // Unique login identifier, case-sensitive as stored.
	CreatedAt time.Time // Set once when the account is registered.
}

// Credential is the transient pairing used during password verification.
// It is loaded from the store, compared against the submitted plaintext, and
// discarded; it is never returned across the request boundary.
type Credential struct {
	AccountID    uuid.UUID // The account this credential authenticates.
	Email        string    // The email the credential was looked up by.
	PasswordHash string    // bcrypt hash, salt embedded.
}
