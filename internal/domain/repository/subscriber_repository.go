package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"
)

// ErrDuplicateSubscriber is returned when the email is already subscribed.
var ErrDuplicateSubscriber = errors.New("subscriber already exists")

// SubscriberRepository defines the operations for job alert subscriptions.
type SubscriberRepository interface {
	// Create persists a new subscriber. Returns ErrDuplicateSubscriber when
	// the email is already registered for alerts.
	Create(ctx context.Context, subscriber *entity.Subscriber) error

	// ListEmails returns every subscribed email address, used to fan out
	// job alert events.
	ListEmails(ctx context.Context) ([]string, error)
}
