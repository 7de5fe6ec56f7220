package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job is a single job posting. PostedBy holds the owner's account email and is
// the key both for the "my jobs" listing and for mutation authorization.
type Job struct {
	ID              uuid.UUID // Store-assigned unique identifier.
	Title           string    // Position title, e.g. "Senior Go Engineer".
	CompanyName     string
	CompanyLogo     string // Optional logo URL.
	MinSalary       int
	MaxSalary       int
	SalaryType      string // "Hourly", "Monthly" or "Yearly".
	Location        string
	PostingDate     string // Client-supplied display date, kept verbatim.
	ExperienceLevel string
	EmploymentType  string
	Description     string
	Skills          []string
	PostedBy        string    // Owner account email.
	CreatedAt       time.Time // Server-side stamp; listings sort on it, newest first.
}

// OwnedBy reports whether the posting belongs to the given account email.
func (j *Job) OwnedBy(email string) bool {
	return j.PostedBy == email
}
