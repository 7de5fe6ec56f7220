package postgres

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriberRepository implements the domain.SubscriberRepository interface using GORM.
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB) repository.SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create persists a new subscriber keyed by email.
func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := &model.SubscriberModel{Email: subscriber.Email}

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}

		return errors.Wrap(err, "failed to create subscriber")
	}

	subscriber.CreatedAt = subscriberM.CreatedAt

	return nil
}

// ListEmails returns every subscribed email address.
func (repo *subscriberRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Order("created_at ASC").
		Pluck("email", &emails).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriber emails")
	}

	return emails, nil
}
