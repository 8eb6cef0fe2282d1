// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a long-running entrypoint such as an HTTP server.
type Delivery interface {
	// Serve blocks until the entrypoint stops or the context is cancelled.
	Serve(ctx context.Context) error
}
