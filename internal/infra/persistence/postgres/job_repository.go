package postgres

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mutableJobColumns are the columns an update overwrites. The ID, owner and
// creation timestamp keep their stored values.
var mutableJobColumns = []string{
	"title", "company_name", "company_logo", "min_salary", "max_salary",
	"salary_type", "location", "posting_date", "experience_level",
	"employment_type", "description", "skills", "posted_by",
}

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// Create persists a new job posting and writes the store-assigned ID and
// creation timestamp back into the entity.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required job fields")
		}

		return errors.Wrap(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt

	return nil
}

// FindByID retrieves a single job posting by its unique ID.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

// FindAll retrieves every job posting, newest first.
func (repo *jobRepository) FindAll(ctx context.Context) ([]*entity.Job, error) {
	var jobMs []*model.JobModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return toJobDomainSlice(jobMs), nil
}

// FindByPostedBy retrieves the postings owned by the given email, newest first.
func (repo *jobRepository) FindByPostedBy(ctx context.Context, email string) ([]*entity.Job, error) {
	var jobMs []*model.JobModel
	err := repo.db.WithContext(ctx).
		Where("posted_by = ?", email).
		Order("created_at DESC").
		Find(&jobMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs by owner")
	}

	return toJobDomainSlice(jobMs), nil
}

// Update overwrites the stored posting with the entity's ID. When no row
// matches and upsert is true the posting is inserted at that ID instead,
// mirroring a replace-with-upsert write.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job, upsert bool) (bool, error) {
	jobM := fromJobDomain(job)

	res := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", job.ID).
		Select(mutableJobColumns).
		Updates(jobM)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "failed to update job")
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if !upsert {
		return false, repository.ErrJobNotFound
	}

	// Insert at the requested ID so the caller's reference stays valid.
	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return false, errors.Wrap(err, "failed to upsert job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt

	return true, nil
}

// Delete removes the posting with the given ID.
func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobModel{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete job")
	}
	if res.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:              data.ID,
		Title:           data.Title,
		CompanyName:     data.CompanyName,
		CompanyLogo:     data.CompanyLogo,
		MinSalary:       data.MinSalary,
		MaxSalary:       data.MaxSalary,
		SalaryType:      data.SalaryType,
		Location:        data.Location,
		PostingDate:     data.PostingDate,
		ExperienceLevel: data.ExperienceLevel,
		EmploymentType:  data.EmploymentType,
		Description:     data.Description,
		Skills:          data.Skills,
		PostedBy:        data.PostedBy,
		CreatedAt:       data.CreatedAt,
	}
}

func toJobDomainSlice(data []*model.JobModel) []*entity.Job {
	jobs := make([]*entity.Job, 0, len(data))
	for _, jobM := range data {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs
}

// fromJobDomain converts a domain Job entity to a GORM JobModel for persistence.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:              data.ID,
		Title:           data.Title,
		CompanyName:     data.CompanyName,
		CompanyLogo:     data.CompanyLogo,
		MinSalary:       data.MinSalary,
		MaxSalary:       data.MaxSalary,
		SalaryType:      data.SalaryType,
		Location:        data.Location,
		PostingDate:     data.PostingDate,
		ExperienceLevel: data.ExperienceLevel,
		EmploymentType:  data.EmploymentType,
		Description:     data.Description,
		Skills:          data.Skills,
		PostedBy:        data.PostedBy,
	}
}
