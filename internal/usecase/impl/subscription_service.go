package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriberRepo repository.SubscriberRepository
	logger         *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriberRepo repository.SubscriberRepository
	Logger         *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriberRepo: params.SubscriberRepo,
		logger:         params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe registers an email for job alerts.
func (srv *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.Subscriber, error) {
	subscriber := &entity.Subscriber{Email: input.Email}

	if err := srv.subscriberRepo.Create(ctx, subscriber); err != nil {
		srv.log(ctx).Warn("Subscription failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			return nil, domainerrors.ErrSubscriberExists.WrapMessage("email already subscribed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create subscriber")
	}

	srv.log(ctx).Info("Subscriber added", slog.String("email", input.Email))

	return subscriber, nil
}
