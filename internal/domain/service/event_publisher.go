package service

import (
	"context"
)

// JobAlertEvent is published when a new job posting is created, so an external
// worker can deliver alert emails to subscribers. Email delivery itself is out
// of scope for this service.
type JobAlertEvent struct {
	RequestID        string   `json:"request_id,omitempty"` // For distributed tracing
	JobID            string   `json:"job_id"`
	Title            string   `json:"title"`
	CompanyName      string   `json:"company_name"`
	Location         string   `json:"location"`
	PostedBy         string   `json:"posted_by"`
	SubscriberEmails []string `json:"subscriber_emails"` // Pre-resolved alert recipients
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishJobAlert publishes a job alert event for async processing.
	PublishJobAlert(ctx context.Context, event *JobAlertEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
