package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when no job posting matches the lookup key.
var ErrJobNotFound = errors.New("job not found")

// JobRepository defines the standard operations for job posting persistence.
type JobRepository interface {
	// Create persists a new job posting. The store assigns the ID and creation
	// timestamp; both are written back into the entity.
	Create(ctx context.Context, job *entity.Job) error

	// FindByID retrieves a single job posting by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// FindAll retrieves every job posting, newest first.
	FindAll(ctx context.Context) ([]*entity.Job, error)

	// FindByPostedBy retrieves the job postings owned by the given email,
	// newest first.
	FindByPostedBy(ctx context.Context, email string) ([]*entity.Job, error)

	// Update overwrites the stored posting with the given ID. When the ID does
	// not exist and upsert is true a new record is created and the entity's ID
	// and timestamps are written back; when upsert is false ErrJobNotFound is
	// returned instead.
	Update(ctx context.Context, job *entity.Job, upsert bool) (created bool, err error)

	// Delete removes the posting with the given ID. Returns ErrJobNotFound
	// when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
