package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	mockRepo "jobboard/internal/mocks/repository"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSubscriptionService(t *testing.T) (usecase.SubscriptionUsecase, *mockRepo.MockSubscriberRepository) {
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)

	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriberRepo: subscriberRepo,
		Logger:         newDiscardLogger(),
	})

	return service, subscriberRepo
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	service, subscriberRepo := createTestSubscriptionService(t)

	ctx := context.Background()

	subscriberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Run(func(ctx context.Context, subscriber *entity.Subscriber) {
			assert.Equal(t, "alice@example.com", subscriber.Email)
		}).
		Return(nil)

	subscriber, err := service.Subscribe(ctx, &usecase.SubscribeInput{Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subscriber.Email)
}

func TestSubscriptionService_Subscribe_Duplicate(t *testing.T) {
	service, subscriberRepo := createTestSubscriptionService(t)

	ctx := context.Background()

	subscriberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Return(repository.ErrDuplicateSubscriber)

	subscriber, err := service.Subscribe(ctx, &usecase.SubscribeInput{Email: "alice@example.com"})

	assert.Nil(t, subscriber)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriberExists))
}
