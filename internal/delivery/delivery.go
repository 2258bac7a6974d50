// Package delivery defines the contract implemented by every transport
// surface of the application.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
