package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	mockRepo "jobboard/internal/mocks/repository"
	mockSvc "jobboard/internal/mocks/service"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobServiceFixtures holds all test dependencies for job service tests.
type jobServiceFixtures struct {
	service        usecase.JobUsecase
	txManager      *mockRepo.MockTransactionManager
	jobRepo        *mockRepo.MockJobRepository
	subscriberRepo *mockRepo.MockSubscriberRepository
	publisher      *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
}

func createTestJobService(t *testing.T, upsertOnUpdate bool) jobServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewJobService(JobServiceParams{
		TxManager:      txManager,
		JobRepo:        jobRepo,
		SubscriberRepo: subscriberRepo,
		Publisher:      publisher,
		QRCodeService:  qrcodeService,
		Config:         newTestConfig(upsertOnUpdate),
		Logger:         newDiscardLogger(),
	})

	return jobServiceFixtures{
		service:        service,
		txManager:      txManager,
		jobRepo:        jobRepo,
		subscriberRepo: subscriberRepo,
		publisher:      publisher,
		qrcodeService:  qrcodeService,
	}
}

func sampleJobInput() *usecase.JobInput {
	return &usecase.JobInput{
		Title:           "Senior Go Engineer",
		CompanyName:     "Acme",
		CompanyLogo:     "https://acme.example.com/logo.png",
		MinSalary:       90000,
		MaxSalary:       120000,
		SalaryType:      "Yearly",
		Location:        "Remote",
		PostingDate:     "2024-05-01",
		ExperienceLevel: "Senior",
		EmploymentType:  "Full-time",
		Description:     "Build backend services.",
		Skills:          []string{"Go", "PostgreSQL"},
	}
}

func TestJobService_Create_Success(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	input := sampleJobInput()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Run(func(ctx context.Context, job *entity.Job) {
			job.ID = jobID
		}).
		Return(nil)

	fx.subscriberRepo.EXPECT().ListEmails(ctx).Return([]string{"alice@example.com"}, nil)

	fx.publisher.EXPECT().
		PublishJobAlert(ctx, mock.AnythingOfType("*service.JobAlertEvent")).
		Run(func(ctx context.Context, event *service.JobAlertEvent) {
			assert.Equal(t, jobID.String(), event.JobID)
			assert.Equal(t, []string{"alice@example.com"}, event.SubscriberEmails)
		}).
		Return(nil)

	job, err := fx.service.Create(ctx, input, "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, "owner@example.com", job.PostedBy)
	assert.Equal(t, input.Title, job.Title)
}

func TestJobService_Create_PublishFailureDoesNotFailCreate(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()

	fx.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.subscriberRepo.EXPECT().ListEmails(ctx).Return([]string{"alice@example.com"}, nil)

	fx.publisher.EXPECT().
		PublishJobAlert(ctx, mock.AnythingOfType("*service.JobAlertEvent")).
		Return(errors.New("broker unavailable"))

	job, err := fx.service.Create(ctx, sampleJobInput(), "owner@example.com")

	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestJobService_Create_NoSubscribersSkipsPublish(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()

	fx.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.subscriberRepo.EXPECT().ListEmails(ctx).Return(nil, nil)

	// No publisher expectation: nothing to fan out to.
	job, err := fx.service.Create(ctx, sampleJobInput(), "owner@example.com")

	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestJobService_GetByID_NotFound(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)

	job, err := fx.service.GetByID(ctx, jobID)

	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_List(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	stored := []*entity.Job{
		{ID: uuid.New(), Title: "Newest"},
		{ID: uuid.New(), Title: "Older"},
	}

	fx.jobRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	jobs, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, jobs)
}

func TestJobService_ListByOwner(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	stored := []*entity.Job{{ID: uuid.New(), PostedBy: "owner@example.com"}}

	fx.jobRepo.EXPECT().FindByPostedBy(ctx, "owner@example.com").Return(stored, nil)

	jobs, err := fx.service.ListByOwner(ctx, "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, stored, jobs)
}

func TestJobService_Update_Success(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()
	input := sampleJobInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(&entity.Job{ID: jobID, PostedBy: "owner@example.com"}, nil)

			mockJobRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Job"), true).
				Return(false, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, jobID, input, "owner@example.com")

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, jobID, output.Job.ID)
	assert.Equal(t, "owner@example.com", output.Job.PostedBy)
}

func TestJobService_Update_NotOwner(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(&entity.Job{ID: jobID, PostedBy: "owner@example.com"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, jobID, sampleJobInput(), "intruder@example.com")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotJobOwner))
}

func TestJobService_Update_UpsertInsertsMissingJob(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(nil, repository.ErrJobNotFound)

			mockJobRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Job"), true).
				Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, jobID, sampleJobInput(), "owner@example.com")

	require.NoError(t, err)
	assert.True(t, output.Created)
}

func TestJobService_Update_NoUpsertMissingJob(t *testing.T) {
	fx := createTestJobService(t, false)

	ctx := context.Background()
	jobID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(nil, repository.ErrJobNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, jobID, sampleJobInput(), "owner@example.com")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_Delete_Success(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(&entity.Job{ID: jobID, PostedBy: "owner@example.com"}, nil)

			mockJobRepo.EXPECT().Delete(ctx, jobID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, jobID, "owner@example.com")

	assert.NoError(t, err)
}

func TestJobService_Delete_NotOwner(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(&entity.Job{ID: jobID, PostedBy: "owner@example.com"}, nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, jobID, "intruder@example.com")

	assert.True(t, errors.Is(err, domainerrors.ErrNotJobOwner))
}

func TestJobService_Delete_NotFound(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockJobRepo := mockRepo.NewMockJobRepository(t)

			mockFactory.EXPECT().NewJobRepository().Return(mockJobRepo)

			mockJobRepo.EXPECT().
				FindByID(ctx, jobID).
				Return(nil, repository.ErrJobNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, jobID, "owner@example.com")

	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_ShareQR_Success(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.jobRepo.EXPECT().
		FindByID(ctx, jobID).
		Return(&entity.Job{ID: jobID}, nil)

	fx.qrcodeService.EXPECT().GenerateJobQR(jobID).Return(png, nil)

	got, err := fx.service.ShareQR(ctx, jobID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestJobService_ShareQR_JobMissing(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)

	got, err := fx.service.ShareQR(ctx, jobID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_List_StoreFailure(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()

	fx.jobRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))

	got, err := fx.service.List(ctx)

	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestJobService_Create_StoreFailure(t *testing.T) {
	fx := createTestJobService(t, true)

	ctx := context.Background()

	fx.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Return(errors.New("connection refused"))

	got, err := fx.service.Create(ctx, sampleJobInput(), "owner@example.com")

	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	fx.publisher.AssertNotCalled(t, "PublishJobAlert", mock.Anything, mock.Anything)
}
