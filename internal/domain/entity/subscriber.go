package entity

import "time"

// Subscriber is an email address registered for job alert notifications.
// Only the address is stored; alert delivery happens outside this service,
// driven by the events published when new jobs are posted.
type Subscriber struct {
	Email     string
	CreatedAt time.Time
}
