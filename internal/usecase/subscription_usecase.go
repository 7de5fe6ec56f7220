package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// SubscribeInput defines the data required to subscribe to job alerts.
type SubscribeInput struct {
	Email string
}

// SubscriptionUsecase defines the interface for job alert subscriptions.
type SubscriptionUsecase interface {
	// Subscribe registers an email for job alerts. A duplicate email fails
	// with ErrSubscriberExists.
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.Subscriber, error)
}
