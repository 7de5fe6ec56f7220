// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP API, alert worker) started by the
// application runner. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
