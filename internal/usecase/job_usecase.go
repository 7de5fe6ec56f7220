package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// JobInput carries the client-supplied fields of a job posting. The owner
// email and server-side fields are supplied separately by the caller.
type JobInput struct {
	Title           string
	CompanyName     string
	CompanyLogo     string
	MinSalary       int
	MaxSalary       int
	SalaryType      string
	Location        string
	PostingDate     string
	ExperienceLevel string
	EmploymentType  string
	Description     string
	Skills          []string
}

// UpdateJobOutput reports the result of an update. Created distinguishes the
// upsert insert path from an in-place overwrite.
type UpdateJobOutput struct {
	Job     *entity.Job
	Created bool
}

// JobUsecase defines the interface for job posting business operations.
type JobUsecase interface {
	// Create persists a new posting owned by postedBy and fans out a job
	// alert event to subscribers. Publish failures do not fail the create.
	Create(ctx context.Context, input *JobInput, postedBy string) (*entity.Job, error)

	// List returns every posting, newest first.
	List(ctx context.Context) ([]*entity.Job, error)

	// GetByID returns a single posting or ErrJobNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// ListByOwner returns the postings owned by the given email, newest first.
	ListByOwner(ctx context.Context, email string) ([]*entity.Job, error)

	// Update overwrites the posting with the given ID. Only the posting owner
	// may update; when the ID does not exist the configured upsert policy
	// decides between inserting and ErrJobNotFound.
	Update(ctx context.Context, id uuid.UUID, input *JobInput, actorEmail string) (*UpdateJobOutput, error)

	// Delete removes the posting with the given ID. Only the posting owner
	// may delete.
	Delete(ctx context.Context, id uuid.UUID, actorEmail string) error

	// ShareQR renders a PNG QR code linking to the posting's detail page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
