package impl

import (
	"context"
	"log/slog"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	txManager      repository.TransactionManager
	jobRepo        repository.JobRepository
	subscriberRepo repository.SubscriberRepository
	publisher      service.EventPublisher
	qrcodeService  service.QRCodeService
	upsertOnUpdate bool
	logger         *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	JobRepo        repository.JobRepository
	SubscriberRepo repository.SubscriberRepository
	Publisher      service.EventPublisher
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	upsertOnUpdate := true
	if params.Config != nil && params.Config.Jobs != nil {
		upsertOnUpdate = params.Config.Jobs.UpsertOnUpdate
	}

	return &jobService{
		txManager:      params.TxManager,
		jobRepo:        params.JobRepo,
		subscriberRepo: params.SubscriberRepo,
		publisher:      params.Publisher,
		qrcodeService:  params.QRCodeService,
		upsertOnUpdate: upsertOnUpdate,
		logger:         params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new posting and fans out a job alert to subscribers.
func (srv *jobService) Create(ctx context.Context, input *usecase.JobInput, postedBy string) (*entity.Job, error) {
	job := jobFromInput(input)
	job.PostedBy = postedBy

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		srv.log(ctx).Error("Failed to create job", slog.String("postedBy", postedBy), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "create job")
	}

	srv.log(ctx).Info("Job created", slog.Any("jobID", job.ID), slog.String("postedBy", postedBy))

	// Alert fan-out is best effort; a broker outage never fails the create.
	srv.publishJobAlert(ctx, job)

	return job, nil
}

func (srv *jobService) publishJobAlert(ctx context.Context, job *entity.Job) {
	emails, err := srv.subscriberRepo.ListEmails(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to list subscribers for job alert", slog.Any("jobID", job.ID), slog.Any("error", err))

		return
	}
	if len(emails) == 0 {
		return
	}

	event := &service.JobAlertEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		JobID:            job.ID.String(),
		Title:            job.Title,
		CompanyName:      job.CompanyName,
		Location:         job.Location,
		PostedBy:         job.PostedBy,
		SubscriberEmails: emails,
	}

	if err := srv.publisher.PublishJobAlert(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish job alert", slog.Any("jobID", job.ID), slog.Any("error", err))
	}
}

// List returns every posting, newest first.
func (srv *jobService) List(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list jobs")
	}

	return jobs, nil
}

// GetByID returns a single posting.
func (srv *jobService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := srv.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound.WrapMessage("job lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find job")
	}

	return job, nil
}

// ListByOwner returns the postings owned by the given email, newest first.
func (srv *jobService) ListByOwner(ctx context.Context, email string) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.FindByPostedBy(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list jobs by owner")
	}

	return jobs, nil
}

// Update overwrites the posting with the given ID after an ownership check.
// The read, the check and the write share one transaction so a concurrent
// owner change cannot slip between them.
func (srv *jobService) Update(ctx context.Context, id uuid.UUID, input *usecase.JobInput, actorEmail string) (*usecase.UpdateJobOutput, error) {
	job := jobFromInput(input)
	job.ID = id
	job.PostedBy = actorEmail

	var created bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.NewJobRepository()

		existing, findErr := jobRepo.FindByID(ctx, id)
		if findErr != nil {
			if !errors.Is(findErr, repository.ErrJobNotFound) {
				return domainerrors.NewDatabaseExecuteError(findErr, "load job for update")
			}
			if !srv.upsertOnUpdate {
				return domainerrors.ErrJobNotFound.WrapMessage("update target missing")
			}
		} else if !existing.OwnedBy(actorEmail) {
			return domainerrors.ErrNotJobOwner.WrapMessage("update denied")
		}

		var updateErr error
		created, updateErr = jobRepo.Update(ctx, job, srv.upsertOnUpdate)
		if updateErr != nil {
			if errors.Is(updateErr, repository.ErrJobNotFound) {
				return domainerrors.ErrJobNotFound.WrapMessage("update target missing")
			}

			return domainerrors.NewDatabaseExecuteError(updateErr, "update job")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Job update failed", slog.Any("jobID", id), slog.String("actor", actorEmail), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Job updated", slog.Any("jobID", id), slog.Bool("created", created))

	return &usecase.UpdateJobOutput{Job: job, Created: created}, nil
}

// Delete removes the posting with the given ID after an ownership check.
func (srv *jobService) Delete(ctx context.Context, id uuid.UUID, actorEmail string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.NewJobRepository()

		existing, findErr := jobRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrJobNotFound) {
				return domainerrors.ErrJobNotFound.WrapMessage("delete target missing")
			}

			return domainerrors.NewDatabaseExecuteError(findErr, "load job for delete")
		}
		if !existing.OwnedBy(actorEmail) {
			return domainerrors.ErrNotJobOwner.WrapMessage("delete denied")
		}

		if deleteErr := jobRepo.Delete(ctx, id); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrJobNotFound) {
				return domainerrors.ErrJobNotFound.WrapMessage("delete target missing")
			}

			return domainerrors.NewDatabaseExecuteError(deleteErr, "delete job")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Job delete failed", slog.Any("jobID", id), slog.String("actor", actorEmail), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Job deleted", slog.Any("jobID", id))

	return nil
}

// ShareQR renders a PNG QR code for an existing posting.
func (srv *jobService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetByID(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateJobQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to render job QR code", slog.Any("jobID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render job QR code")
	}

	return png, nil
}

func jobFromInput(input *usecase.JobInput) *entity.Job {
	return &entity.Job{
		Title:           input.Title,
		CompanyName:     input.CompanyName,
		CompanyLogo:     input.CompanyLogo,
		MinSalary:       input.MinSalary,
		MaxSalary:       input.MaxSalary,
		SalaryType:      input.SalaryType,
		Location:        input.Location,
		PostingDate:     input.PostingDate,
		ExperienceLevel: input.ExperienceLevel,
		EmploymentType:  input.EmploymentType,
		Description:     input.Description,
		Skills:          input.Skills,
	}
}
