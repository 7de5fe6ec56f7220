package response

import (
	"time"

	"jobboard/internal/domain/entity"
)

// JobView is the client projection of a job posting. Field names follow the
// original API the frontend was built against, including the createAt stamp.
type JobView struct {
	ID              string    `json:"id"`
	Title           string    `json:"jobTitle"`
	CompanyName     string    `json:"companyName"`
	CompanyLogo     string    `json:"companyLogo,omitempty"`
	MinSalary       int       `json:"minPrice"`
	MaxSalary       int       `json:"maxPrice"`
	SalaryType      string    `json:"salaryType"`
	Location        string    `json:"jobLocation"`
	PostingDate     string    `json:"postingDate"`
	ExperienceLevel string    `json:"experienceLevel"`
	EmploymentType  string    `json:"employmentType"`
	Description     string    `json:"description"`
	Skills          []string  `json:"skills"`
	PostedBy        string    `json:"postedBy"`
	CreatedAt       time.Time `json:"createAt"`
}

// NewJobView maps a job entity to its client projection.
func NewJobView(job *entity.Job) JobView {
	return JobView{
		ID:              job.ID.String(),
		Title:           job.Title,
		CompanyName:     job.CompanyName,
		CompanyLogo:     job.CompanyLogo,
		MinSalary:       job.MinSalary,
		MaxSalary:       job.MaxSalary,
		SalaryType:      job.SalaryType,
		Location:        job.Location,
		PostingDate:     job.PostingDate,
		ExperienceLevel: job.ExperienceLevel,
		EmploymentType:  job.EmploymentType,
		Description:     job.Description,
		Skills:          job.Skills,
		PostedBy:        job.PostedBy,
		CreatedAt:       job.CreatedAt,
	}
}

// NewJobViews maps a listing, preserving order.
func NewJobViews(jobs []*entity.Job) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, NewJobView(job))
	}

	return views
}
