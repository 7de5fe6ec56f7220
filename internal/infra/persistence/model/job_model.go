package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table. Skills are serialized as a JSONB array so
// the list survives round trips without a join table.
type JobModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title           string    `gorm:"type:varchar(255);not null"`
	CompanyName     string    `gorm:"type:varchar(255);not null"`
	CompanyLogo     string    `gorm:"type:varchar(512)"`
	MinSalary       int
	MaxSalary       int
	SalaryType      string `gorm:"type:varchar(50)"`
	Location        string `gorm:"type:varchar(255)"`
	PostingDate     string `gorm:"type:varchar(50)"`
	ExperienceLevel string `gorm:"type:varchar(100)"`
	EmploymentType  string `gorm:"type:varchar(100)"`
	Description     string `gorm:"type:text"`
	Skills          []string `gorm:"serializer:json;type:jsonb"`
	PostedBy        string   `gorm:"type:varchar(255);not null;index"`
	CreatedAt       time.Time `gorm:"index:idx_jobs_created_at,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
